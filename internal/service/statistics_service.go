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

// StatisticsService computes author-facing aggregate reports for a survey.
type StatisticsService interface {
	GetStatistics(surveyID, requesterID uint) (*dto.SurveyStatsDTO, error)
}

type statisticsService struct {
	surveyRepo   repository.SurveyRepository
	questionRepo repository.QuestionRepository
	responseRepo repository.ResponseRepository
	answerRepo   repository.AnswerRepository
	statsCache   cache.StatsCache
}

func NewStatisticsService(
	surveyRepo repository.SurveyRepository,
	questionRepo repository.QuestionRepository,
	responseRepo repository.ResponseRepository,
	answerRepo repository.AnswerRepository,
	statsCache cache.StatsCache,
) StatisticsService {
	return &statisticsService{
		surveyRepo:   surveyRepo,
		questionRepo: questionRepo,
		responseRepo: responseRepo,
		answerRepo:   answerRepo,
		statsCache:   statsCache,
	}
}

func (s *statisticsService) GetStatistics(surveyID, requesterID uint) (*dto.SurveyStatsDTO, error) {
	survey, err := s.surveyRepo.FindActiveByID(surveyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrSurveyNotFound
		}
		return nil, err
	}
	if survey.AuthorID != requesterID {
		return nil, model.ErrForbidden
	}

	ctx := context.Background()
	if cached, err := s.statsCache.Get(ctx, surveyID); err != nil {
		log.Warn().Err(err).Uint("surveyID", surveyID).Msg("GetStatistics: stats cache read failed, recomputing")
	} else if cached != nil {
		return cached, nil
	}

	stats, err := s.compute(survey)
	if err != nil {
		return nil, err
	}

	if err := s.statsCache.Set(ctx, stats); err != nil {
		log.Warn().Err(err).Uint("surveyID", surveyID).Msg("GetStatistics: stats cache write failed")
	}
	return stats, nil
}

func (s *statisticsService) compute(survey *model.Survey) (*dto.SurveyStatsDTO, error) {
	totalResponses, err := s.responseRepo.CountBySurvey(survey.ID)
	if err != nil {
		return nil, err
	}
	completedResponses, err := s.responseRepo.CountCompletedBySurvey(survey.ID)
	if err != nil {
		return nil, err
	}

	completionRate := 0.0
	if totalResponses > 0 {
		completionRate = roundTo2(float64(completedResponses) / float64(totalResponses) * 100)
	}

	var avgCompletionSeconds *float64
	completed, err := s.responseRepo.FindCompletedBySurvey(survey.ID)
	if err != nil {
		return nil, err
	}
	if len(completed) > 0 {
		var totalSeconds float64
		for _, r := range completed {
			totalSeconds += r.CompletedAt.Sub(r.StartedAt).Seconds()
		}
		avg := roundTo2(totalSeconds / float64(len(completed)))
		avgCompletionSeconds = &avg
	}

	questions, err := s.questionRepo.FindBySurveyID(survey.ID)
	if err != nil {
		return nil, err
	}

	questionStats := make([]dto.QuestionStatsDTO, 0, len(questions))
	for _, question := range questions {
		counts, err := s.answerRepo.CountByOption(question.ID)
		if err != nil {
			return nil, err
		}

		var totalAnswers int64
		for _, c := range counts {
			totalAnswers += c.Count
		}

		options := make([]dto.OptionStatsDTO, 0, len(counts))
		for _, c := range counts {
			percentage := 0.0
			if totalAnswers > 0 {
				percentage = roundTo2(float64(c.Count) / float64(totalAnswers) * 100)
			}
			options = append(options, dto.OptionStatsDTO{
				OptionID:   c.OptionID,
				OptionText: c.OptionText,
				Count:      c.Count,
				Percentage: percentage,
			})
		}

		questionStats = append(questionStats, dto.QuestionStatsDTO{
			QuestionID:   question.ID,
			QuestionText: question.Text,
			Order:        question.Order,
			TotalAnswers: totalAnswers,
			Options:      options,
		})
	}

	return &dto.SurveyStatsDTO{
		SurveyID:                 survey.ID,
		SurveyTitle:              survey.Title,
		TotalResponses:           totalResponses,
		CompletedResponses:       completedResponses,
		CompletionRate:           completionRate,
		AvgCompletionTimeSeconds: avgCompletionSeconds,
		QuestionsStatistics:      questionStats,
	}, nil
}
