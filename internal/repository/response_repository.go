package repository

import (
	"errors"
	"time"

	"github.com/lshigami/Meerkats/internal/model"
	"gorm.io/gorm"
)

type ResponseRepository interface {
	// GetOrCreate returns the response for (survey, user), creating it if
	// absent. Safe under concurrent first calls: the (survey_id, user_id)
	// unique index plus a duplicate-key retry guarantee a single row and a
	// single created=true observation.
	GetOrCreate(surveyID, userID uint) (response *model.SurveyResponse, created bool, err error)
	FindByID(id uint) (*model.SurveyResponse, error)
	// MarkCompleted flips the completion flag exactly once. Returns false when
	// another request already completed the response.
	MarkCompleted(id uint, completedAt time.Time) (bool, error)
	CountBySurvey(surveyID uint) (int64, error)
	CountCompletedBySurvey(surveyID uint) (int64, error)
	// FindCompletedBySurvey returns completed responses that carry a
	// completion timestamp, for duration aggregation.
	FindCompletedBySurvey(surveyID uint) ([]model.SurveyResponse, error)
}

type responseRepository struct {
	db *gorm.DB
}

func NewResponseRepository(db *gorm.DB) ResponseRepository {
	return &responseRepository{db: db}
}

func (r *responseRepository) GetOrCreate(surveyID, userID uint) (*model.SurveyResponse, bool, error) {
	var response model.SurveyResponse
	err := r.db.Where("survey_id = ? AND user_id = ?", surveyID, userID).First(&response).Error
	if err == nil {
		return &response, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	response = model.SurveyResponse{SurveyID: surveyID, UserID: userID, StartedAt: time.Now()}
	if err := r.db.Create(&response).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race against a concurrent first call; the winner's row
			// is the response.
			var existing model.SurveyResponse
			if err := r.db.Where("survey_id = ? AND user_id = ?", surveyID, userID).First(&existing).Error; err != nil {
				return nil, false, err
			}
			return &existing, false, nil
		}
		return nil, false, err
	}
	return &response, true, nil
}

func (r *responseRepository) FindByID(id uint) (*model.SurveyResponse, error) {
	var response model.SurveyResponse
	if err := r.db.First(&response, id).Error; err != nil {
		return nil, err
	}
	return &response, nil
}

func (r *responseRepository) MarkCompleted(id uint, completedAt time.Time) (bool, error) {
	result := r.db.Model(&model.SurveyResponse{}).
		Where("id = ? AND is_completed = ?", id, false).
		Updates(map[string]interface{}{"is_completed": true, "completed_at": completedAt})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *responseRepository) CountBySurvey(surveyID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.SurveyResponse{}).Where("survey_id = ?", surveyID).Count(&count).Error
	return count, err
}

func (r *responseRepository) CountCompletedBySurvey(surveyID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.SurveyResponse{}).
		Where("survey_id = ? AND is_completed = ?", surveyID, true).
		Count(&count).Error
	return count, err
}

func (r *responseRepository) FindCompletedBySurvey(surveyID uint) ([]model.SurveyResponse, error) {
	var responses []model.SurveyResponse
	err := r.db.Where("survey_id = ? AND is_completed = ? AND completed_at IS NOT NULL", surveyID, true).
		Find(&responses).Error
	return responses, err
}
