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

// AuthorSurveyService covers the authoring surface: creating a survey with its
// ordered questions and options, managing it afterwards, and listing the
// author's surveys including deactivated ones.
type AuthorSurveyService interface {
	CreateSurvey(authorID uint, req dto.SurveyCreateDTO) (*dto.SurveyResponseDTO, error)
	UpdateSurvey(authorID, surveyID uint, req dto.SurveyUpdateDTO) (*dto.SurveyResponseDTO, error)
	DeleteSurvey(authorID, surveyID uint) error
	ListMine(authorID uint) ([]dto.SurveySummaryDTO, error)
}

type authorSurveyService struct {
	surveyRepo repository.SurveyRepository
}

func NewAuthorSurveyService(surveyRepo repository.SurveyRepository) AuthorSurveyService {
	return &authorSurveyService{surveyRepo: surveyRepo}
}

func (s *authorSurveyService) CreateSurvey(authorID uint, req dto.SurveyCreateDTO) (*dto.SurveyResponseDTO, error) {
	questionOrders := make(map[int]bool)
	questions := make([]model.Question, 0, len(req.Questions))

	for _, qDto := range req.Questions {
		order := *qDto.Order
		if order < 0 {
			return nil, fmt.Errorf("%w: question order must be non-negative, got %d", model.ErrInvalidInput, order)
		}
		if questionOrders[order] {
			return nil, fmt.Errorf("%w: duplicate question order %d", model.ErrInvalidInput, order)
		}
		questionOrders[order] = true

		optionOrders := make(map[int]bool)
		options := make([]model.AnswerOption, 0, len(qDto.AnswerOptions))
		for _, oDto := range qDto.AnswerOptions {
			oOrder := *oDto.Order
			if oOrder < 0 {
				return nil, fmt.Errorf("%w: option order must be non-negative, got %d", model.ErrInvalidInput, oOrder)
			}
			if optionOrders[oOrder] {
				return nil, fmt.Errorf("%w: duplicate option order %d in question %d", model.ErrInvalidInput, oOrder, order)
			}
			optionOrders[oOrder] = true
			options = append(options, model.AnswerOption{Text: oDto.Text, Order: oOrder})
		}

		questions = append(questions, model.Question{
			Text:          qDto.Text,
			Order:         order,
			AnswerOptions: options,
		})
	}

	survey := model.Survey{
		Title:     req.Title,
		AuthorID:  authorID,
		IsActive:  true,
		Questions: questions,
	}
	if err := s.surveyRepo.Create(&survey); err != nil {
		log.Error().Err(err).Uint("authorID", authorID).Msg("CreateSurvey: database error")
		return nil, fmt.Errorf("database error creating survey: %w", err)
	}

	created, err := s.surveyRepo.FindActiveByIDWithQuestions(survey.ID)
	if err != nil {
		log.Error().Err(err).Uint("surveyID", survey.ID).Msg("CreateSurvey: failed to reload created survey")
		created = &survey
	}

	var resp dto.SurveyResponseDTO
	if err := copier.Copy(&resp, created); err != nil {
		return nil, fmt.Errorf("error preparing survey response: %w", err)
	}
	return &resp, nil
}

func (s *authorSurveyService) UpdateSurvey(authorID, surveyID uint, req dto.SurveyUpdateDTO) (*dto.SurveyResponseDTO, error) {
	survey, err := s.findOwned(authorID, surveyID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		survey.Title = *req.Title
	}
	if req.IsActive != nil {
		survey.IsActive = *req.IsActive
	}
	if err := s.surveyRepo.Update(survey); err != nil {
		log.Error().Err(err).Uint("surveyID", surveyID).Msg("UpdateSurvey: database error")
		return nil, err
	}

	var resp dto.SurveyResponseDTO
	if err := copier.Copy(&resp, survey); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *authorSurveyService) DeleteSurvey(authorID, surveyID uint) error {
	if _, err := s.findOwned(authorID, surveyID); err != nil {
		return err
	}
	return s.surveyRepo.Delete(surveyID)
}

func (s *authorSurveyService) ListMine(authorID uint) ([]dto.SurveySummaryDTO, error) {
	surveys, err := s.surveyRepo.FindByAuthorWithQuestionCount(authorID)
	if err != nil {
		log.Error().Err(err).Uint("authorID", authorID).Msg("ListMine: database error")
		return nil, err
	}
	return summarize(surveys), nil
}

func (s *authorSurveyService) findOwned(authorID, surveyID uint) (*model.Survey, error) {
	survey, err := s.surveyRepo.FindByID(surveyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrSurveyNotFound
		}
		return nil, err
	}
	if survey.AuthorID != authorID {
		return nil, model.ErrForbidden
	}
	return survey, nil
}

func summarize(surveys []repository.SurveyWithQuestionCount) []dto.SurveySummaryDTO {
	summaries := make([]dto.SurveySummaryDTO, 0, len(surveys))
	for _, s := range surveys {
		summaries = append(summaries, dto.SurveySummaryDTO{
			ID:            s.Survey.ID,
			Title:         s.Survey.Title,
			AuthorID:      s.Survey.AuthorID,
			IsActive:      s.Survey.IsActive,
			QuestionCount: s.QuestionCount,
			CreatedAt:     s.Survey.CreatedAt,
		})
	}
	return summaries
}
