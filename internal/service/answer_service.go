package service

import (
	"context"
	"errors"

	"github.com/lshigami/Meerkats/internal/cache"
	"github.com/lshigami/Meerkats/internal/dto"
	"github.com/lshigami/Meerkats/internal/model"
	"github.com/lshigami/Meerkats/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AnswerService validates and idempotently records a respondent's answers.
type AnswerService interface {
	SubmitAnswer(surveyID, userID, questionID, optionID uint) (*dto.AnswerResultDTO, error)
}

type answerService struct {
	surveyRepo   repository.SurveyRepository
	questionRepo repository.QuestionRepository
	responseRepo repository.ResponseRepository
	answerRepo   repository.AnswerRepository
	statsCache   cache.StatsCache
}

func NewAnswerService(
	surveyRepo repository.SurveyRepository,
	questionRepo repository.QuestionRepository,
	responseRepo repository.ResponseRepository,
	answerRepo repository.AnswerRepository,
	statsCache cache.StatsCache,
) AnswerService {
	return &answerService{
		surveyRepo:   surveyRepo,
		questionRepo: questionRepo,
		responseRepo: responseRepo,
		answerRepo:   answerRepo,
		statsCache:   statsCache,
	}
}

// SubmitAnswer validates the survey/question/option chain before touching any
// state, then upserts the answer keyed by (response, question).
func (s *answerService) SubmitAnswer(surveyID, userID, questionID, optionID uint) (*dto.AnswerResultDTO, error) {
	if questionID == 0 || optionID == 0 {
		return nil, model.ErrInvalidInput
	}

	if _, err := s.surveyRepo.FindActiveByID(surveyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrSurveyNotFound
		}
		return nil, err
	}

	question, err := s.questionRepo.FindBySurvey(questionID, surveyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrQuestionNotFound
		}
		return nil, err
	}

	option, err := s.questionRepo.FindOptionByQuestion(optionID, question.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrOptionNotFound
		}
		return nil, err
	}

	response, _, err := s.responseRepo.GetOrCreate(surveyID, userID)
	if err != nil {
		log.Error().Err(err).Uint("surveyID", surveyID).Uint("userID", userID).Msg("SubmitAnswer: failed to get or create response")
		return nil, err
	}
	if response.IsCompleted {
		return nil, model.ErrAlreadyCompleted
	}

	answer, created, err := s.answerRepo.Upsert(response.ID, question.ID, option.ID)
	if err != nil {
		log.Error().Err(err).Uint("responseID", response.ID).Uint("questionID", question.ID).Msg("SubmitAnswer: upsert failed")
		return nil, err
	}

	if err := s.statsCache.Invalidate(context.Background(), surveyID); err != nil {
		log.Warn().Err(err).Uint("surveyID", surveyID).Msg("SubmitAnswer: failed to invalidate stats cache")
	}

	return &dto.AnswerResultDTO{AnswerID: answer.ID, Created: created}, nil
}
