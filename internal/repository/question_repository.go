package repository

import (
	"github.com/lshigami/Meerkats/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	FindBySurveyID(surveyID uint) ([]model.Question, error)
	// FindBySurvey resolves a question only if it belongs to the given survey.
	FindBySurvey(id, surveyID uint) (*model.Question, error)
	FindOptionByQuestion(optionID, questionID uint) (*model.AnswerOption, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) FindBySurveyID(surveyID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.Where("survey_id = ?", surveyID).
		Preload("AnswerOptions", func(db *gorm.DB) *gorm.DB {
			return db.Order("answer_options.display_order ASC")
		}).
		Order("display_order ASC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindBySurvey(id, surveyID uint) (*model.Question, error) {
	var question model.Question
	err := r.db.Where("id = ? AND survey_id = ?", id, surveyID).First(&question).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindOptionByQuestion(optionID, questionID uint) (*model.AnswerOption, error) {
	var option model.AnswerOption
	err := r.db.Where("id = ? AND question_id = ?", optionID, questionID).First(&option).Error
	if err != nil {
		return nil, err
	}
	return &option, nil
}
