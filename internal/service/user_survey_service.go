package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Meerkats/internal/dto"
	"github.com/lshigami/Meerkats/internal/model"
	"github.com/lshigami/Meerkats/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// UserSurveyService is the respondent-facing read surface: active surveys only.
type UserSurveyService interface {
	ListSurveys() ([]dto.SurveySummaryDTO, error)
	GetSurveyDetails(surveyID uint) (*dto.SurveyResponseDTO, error)
}

type userSurveyService struct {
	surveyRepo repository.SurveyRepository
}

func NewUserSurveyService(surveyRepo repository.SurveyRepository) UserSurveyService {
	return &userSurveyService{surveyRepo: surveyRepo}
}

func (s *userSurveyService) ListSurveys() ([]dto.SurveySummaryDTO, error) {
	surveys, err := s.surveyRepo.FindAllActiveWithQuestionCount()
	if err != nil {
		log.Error().Err(err).Msg("ListSurveys: database error")
		return nil, fmt.Errorf("error fetching surveys: %w", err)
	}
	return summarize(surveys), nil
}

func (s *userSurveyService) GetSurveyDetails(surveyID uint) (*dto.SurveyResponseDTO, error) {
	survey, err := s.surveyRepo.FindActiveByIDWithQuestions(surveyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrSurveyNotFound
		}
		log.Error().Err(err).Uint("surveyID", surveyID).Msg("GetSurveyDetails: database error")
		return nil, err
	}

	var resp dto.SurveyResponseDTO
	if err := copier.Copy(&resp, survey); err != nil {
		return nil, fmt.Errorf("error preparing survey details response: %w", err)
	}
	return &resp, nil
}
