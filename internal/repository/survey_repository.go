package repository

import (
	"github.com/lshigami/Meerkats/internal/model"
	"gorm.io/gorm"
)

type SurveyRepository interface {
	Create(survey *model.Survey) error
	Update(survey *model.Survey) error
	Delete(id uint) error
	FindByID(id uint) (*model.Survey, error)
	// FindActiveByID resolves a survey the way respondent-facing flows see it:
	// inactive surveys do not exist.
	FindActiveByID(id uint) (*model.Survey, error)
	FindActiveByIDWithQuestions(id uint) (*model.Survey, error)
	FindAllActiveWithQuestionCount() ([]SurveyWithQuestionCount, error)
	FindByAuthorWithQuestionCount(authorID uint) ([]SurveyWithQuestionCount, error)
}

type SurveyWithQuestionCount struct {
	model.Survey
	QuestionCount int
}

type surveyRepository struct {
	db *gorm.DB
}

func NewSurveyRepository(db *gorm.DB) SurveyRepository {
	return &surveyRepository{db: db}
}

func (r *surveyRepository) Create(survey *model.Survey) error {
	// Creates nested questions and options in the same insert batch.
	return r.db.Create(survey).Error
}

func (r *surveyRepository) Update(survey *model.Survey) error {
	return r.db.Save(survey).Error
}

func (r *surveyRepository) Delete(id uint) error {
	return r.db.Delete(&model.Survey{}, id).Error
}

func (r *surveyRepository) FindByID(id uint) (*model.Survey, error) {
	var survey model.Survey
	if err := r.db.First(&survey, id).Error; err != nil {
		return nil, err
	}
	return &survey, nil
}

func (r *surveyRepository) FindActiveByID(id uint) (*model.Survey, error) {
	var survey model.Survey
	if err := r.db.Where("is_active = ?", true).First(&survey, id).Error; err != nil {
		return nil, err
	}
	return &survey, nil
}

func (r *surveyRepository) FindActiveByIDWithQuestions(id uint) (*model.Survey, error) {
	var survey model.Survey
	err := r.db.Where("is_active = ?", true).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.display_order ASC")
		}).
		Preload("Questions.AnswerOptions", func(db *gorm.DB) *gorm.DB {
			return db.Order("answer_options.display_order ASC")
		}).
		First(&survey, id).Error
	if err != nil {
		return nil, err
	}
	return &survey, nil
}

func (r *surveyRepository) FindAllActiveWithQuestionCount() ([]SurveyWithQuestionCount, error) {
	return r.findWithQuestionCount(r.db.Where("surveys.is_active = ?", true))
}

func (r *surveyRepository) FindByAuthorWithQuestionCount(authorID uint) ([]SurveyWithQuestionCount, error) {
	return r.findWithQuestionCount(r.db.Where("surveys.author_id = ?", authorID))
}

func (r *surveyRepository) findWithQuestionCount(query *gorm.DB) ([]SurveyWithQuestionCount, error) {
	var results []SurveyWithQuestionCount
	err := query.Model(&model.Survey{}).
		Select("surveys.*, (SELECT COUNT(*) FROM questions WHERE questions.survey_id = surveys.id) as question_count").
		Where("surveys.deleted_at IS NULL").
		Order("surveys.created_at DESC").
		Scan(&results).Error
	return results, err
}
