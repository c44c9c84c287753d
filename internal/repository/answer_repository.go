package repository

import (
	"errors"
	"time"

	"github.com/lshigami/Meerkats/internal/model"
	"gorm.io/gorm"
)

type AnswerRepository interface {
	// Upsert records the chosen option for (response, question), overwriting a
	// prior answer to the same question. Atomic under the
	// (survey_response_id, question_id) unique index; concurrent submissions
	// collapse into one row with the later writer's option.
	Upsert(responseID, questionID, optionID uint) (answer *model.Answer, created bool, err error)
	AnsweredQuestionIDs(responseID uint) (map[uint]struct{}, error)
	CountByOption(questionID uint) ([]OptionCount, error)
}

type OptionCount struct {
	OptionID   uint
	OptionText string
	Count      int64
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) Upsert(responseID, questionID, optionID uint) (*model.Answer, bool, error) {
	var answer model.Answer
	created := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("survey_response_id = ? AND question_id = ?", responseID, questionID).
			First(&answer).Error
		switch {
		case err == nil:
			answer.AnswerOptionID = optionID
			answer.AnsweredAt = time.Now()
			return tx.Save(&answer).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			answer = model.Answer{
				SurveyResponseID: responseID,
				QuestionID:       questionID,
				AnswerOptionID:   optionID,
				AnsweredAt:       time.Now(),
			}
			if err := tx.Create(&answer).Error; err == nil {
				created = true
				return nil
			} else if !errors.Is(err, gorm.ErrDuplicatedKey) {
				return err
			}
			// A concurrent submission created the row first; supersede it.
			if err := tx.Where("survey_response_id = ? AND question_id = ?", responseID, questionID).
				First(&answer).Error; err != nil {
				return model.ErrConflict
			}
			answer.AnswerOptionID = optionID
			answer.AnsweredAt = time.Now()
			return tx.Save(&answer).Error
		default:
			return err
		}
	})
	if err != nil {
		return nil, false, err
	}
	return &answer, created, nil
}

func (r *answerRepository) AnsweredQuestionIDs(responseID uint) (map[uint]struct{}, error) {
	var ids []uint
	err := r.db.Model(&model.Answer{}).
		Where("survey_response_id = ?", responseID).
		Pluck("question_id", &ids).Error
	if err != nil {
		return nil, err
	}
	set := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}

// CountByOption returns every option of the question with its answer count,
// zero-count options included, ordered by descending count.
func (r *answerRepository) CountByOption(questionID uint) ([]OptionCount, error) {
	var counts []OptionCount
	err := r.db.Model(&model.AnswerOption{}).
		Select("answer_options.id as option_id, answer_options.text as option_text, COUNT(answers.id) as count").
		Joins("LEFT JOIN answers ON answers.answer_option_id = answer_options.id").
		Where("answer_options.question_id = ?", questionID).
		Group("answer_options.id, answer_options.text, answer_options.display_order").
		Order("count DESC, answer_options.display_order ASC").
		Scan(&counts).Error
	return counts, err
}
