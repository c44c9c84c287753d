package service

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Meerkats/internal/cache"
	"github.com/lshigami/Meerkats/internal/dto"
	"github.com/lshigami/Meerkats/internal/model"
	"github.com/lshigami/Meerkats/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ProgressionService walks a respondent through a survey one question at a
// time and detects completion.
type ProgressionService interface {
	GetNextQuestion(surveyID, userID uint) (*dto.NextStepDTO, error)
}

type progressionService struct {
	surveyRepo   repository.SurveyRepository
	responseRepo repository.ResponseRepository
	answerRepo   repository.AnswerRepository
	statsCache   cache.StatsCache
}

func NewProgressionService(
	surveyRepo repository.SurveyRepository,
	responseRepo repository.ResponseRepository,
	answerRepo repository.AnswerRepository,
	statsCache cache.StatsCache,
) ProgressionService {
	return &progressionService{
		surveyRepo:   surveyRepo,
		responseRepo: responseRepo,
		answerRepo:   answerRepo,
		statsCache:   statsCache,
	}
}

func (s *progressionService) GetNextQuestion(surveyID, userID uint) (*dto.NextStepDTO, error) {
	survey, err := s.surveyRepo.FindActiveByIDWithQuestions(surveyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrSurveyNotFound
		}
		return nil, err
	}

	response, _, err := s.responseRepo.GetOrCreate(surveyID, userID)
	if err != nil {
		log.Error().Err(err).Uint("surveyID", surveyID).Uint("userID", userID).Msg("GetNextQuestion: failed to get or create response")
		return nil, err
	}

	if response.IsCompleted {
		return &dto.NextStepDTO{Completed: &dto.CompletedDTO{
			Message:     "You have already completed this survey",
			CompletedAt: response.CompletedAt,
		}}, nil
	}

	total := len(survey.Questions)
	if total == 0 {
		return nil, model.ErrNoQuestions
	}

	answered, err := s.answerRepo.AnsweredQuestionIDs(response.ID)
	if err != nil {
		return nil, err
	}
	answeredCount := len(answered)

	// Questions are preloaded in ascending order, so the first unanswered one
	// is the next to serve.
	var next *model.Question
	for i := range survey.Questions {
		if _, ok := answered[survey.Questions[i].ID]; !ok {
			next = &survey.Questions[i]
			break
		}
	}

	if next == nil {
		return s.complete(response, total)
	}

	var questionDTO dto.QuestionDTO
	if err := copier.Copy(&questionDTO, next); err != nil {
		return nil, err
	}

	return &dto.NextStepDTO{NextQuestion: &dto.NextQuestionDTO{
		Question: questionDTO,
		IsLast:   answeredCount+1 == total,
		Progress: dto.ProgressDTO{
			Current: answeredCount + 1,
			Total:   total,
			// Progress counts questions already answered, not the one being
			// served.
			Percentage: roundTo2(float64(answeredCount) / float64(total) * 100),
		},
	}}, nil
}

// complete performs the one-way completion transition. Exactly one request
// flips the flag; a concurrent loser reads the winner's timestamp.
func (s *progressionService) complete(response *model.SurveyResponse, total int) (*dto.NextStepDTO, error) {
	now := time.Now()
	flipped, err := s.responseRepo.MarkCompleted(response.ID, now)
	if err != nil {
		return nil, err
	}

	completedAt := &now
	if flipped {
		if err := s.statsCache.Invalidate(context.Background(), response.SurveyID); err != nil {
			log.Warn().Err(err).Uint("surveyID", response.SurveyID).Msg("GetNextQuestion: failed to invalidate stats cache")
		}
	} else {
		current, err := s.responseRepo.FindByID(response.ID)
		if err != nil {
			return nil, err
		}
		completedAt = current.CompletedAt
	}

	return &dto.NextStepDTO{Completed: &dto.CompletedDTO{
		Message:        "Survey completed, thank you for participating",
		CompletedAt:    completedAt,
		TotalQuestions: total,
	}}, nil
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
