package service_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/lshigami/Meerkats/internal/dto"
	"github.com/lshigami/Meerkats/internal/model"
	"github.com/lshigami/Meerkats/internal/service"
)

func newProgression(store *fakeStore) (service.ProgressionService, service.AnswerService) {
	statsCache := newFakeStatsCache()
	progression := service.NewProgressionService(store, store.responseRepo(), store, statsCache)
	answers := service.NewAnswerService(store, store, store.responseRepo(), store, statsCache)
	return progression, answers
}

func TestTwoQuestionWalkthrough(t *testing.T) {
	store := newFakeStore()
	survey := store.addSurvey(1, "Morning habits", 2, 2)
	progression, answers := newProgression(store)

	const respondent = uint(42)

	// First call serves Q1 with zero progress.
	step, err := progression.GetNextQuestion(survey.ID, respondent)
	if err != nil {
		t.Fatalf("next question failed: %v", err)
	}
	if step.NextQuestion == nil {
		t.Fatalf("expected a question, got %+v", step)
	}
	q1 := step.NextQuestion
	if q1.Question.Order != 0 {
		t.Errorf("expected question order 0, got %d", q1.Question.Order)
	}
	if q1.IsLast {
		t.Error("first of two questions should not be last")
	}
	wantProgress := dto.ProgressDTO{Current: 1, Total: 2, Percentage: 0}
	if q1.Progress != wantProgress {
		t.Errorf("expected progress %+v, got %+v", wantProgress, q1.Progress)
	}
	if len(q1.Question.AnswerOptions) != 2 {
		t.Fatalf("expected 2 options, got %d", len(q1.Question.AnswerOptions))
	}

	result, err := answers.SubmitAnswer(survey.ID, respondent, q1.Question.ID, q1.Question.AnswerOptions[0].ID)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if !result.Created {
		t.Error("first answer should be created, not updated")
	}

	// Second call serves Q2, flagged last, at 50%.
	step, err = progression.GetNextQuestion(survey.ID, respondent)
	if err != nil {
		t.Fatalf("next question failed: %v", err)
	}
	q2 := step.NextQuestion
	if q2 == nil {
		t.Fatalf("expected second question, got %+v", step)
	}
	if q2.Question.Order != 1 {
		t.Errorf("expected question order 1, got %d", q2.Question.Order)
	}
	if !q2.IsLast {
		t.Error("second of two questions should be last")
	}
	wantProgress = dto.ProgressDTO{Current: 2, Total: 2, Percentage: 50}
	if q2.Progress != wantProgress {
		t.Errorf("expected progress %+v, got %+v", wantProgress, q2.Progress)
	}

	if _, err := answers.SubmitAnswer(survey.ID, respondent, q2.Question.ID, q2.Question.AnswerOptions[0].ID); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	// Third call completes the response.
	step, err = progression.GetNextQuestion(survey.ID, respondent)
	if err != nil {
		t.Fatalf("next question failed: %v", err)
	}
	if step.Completed == nil {
		t.Fatalf("expected completion, got %+v", step)
	}
	if step.Completed.TotalQuestions != 2 {
		t.Errorf("expected 2 total questions, got %d", step.Completed.TotalQuestions)
	}
	if step.Completed.CompletedAt == nil {
		t.Error("expected a completion timestamp")
	}

	// And stays completed on repeat calls, without firing the transition again.
	step, err = progression.GetNextQuestion(survey.ID, respondent)
	if err != nil {
		t.Fatalf("next question failed: %v", err)
	}
	if step.Completed == nil || step.Completed.CompletedAt == nil {
		t.Fatalf("expected stable completion, got %+v", step)
	}
}

func TestCompletionNeverFiresEarly(t *testing.T) {
	store := newFakeStore()
	survey := store.addSurvey(1, "Weekly check-in", 2, 2, 2, 2, 2)
	progression, answers := newProgression(store)

	for i := 0; i < 5; i++ {
		step, err := progression.GetNextQuestion(survey.ID, 7)
		if err != nil {
			t.Fatalf("call %d failed: %v", i+1, err)
		}
		if step.NextQuestion == nil {
			t.Fatalf("completed after %d answers, want 5", i)
		}
		question := step.NextQuestion.Question
		if _, err := answers.SubmitAnswer(survey.ID, 7, question.ID, question.AnswerOptions[0].ID); err != nil {
			t.Fatalf("submit %d failed: %v", i+1, err)
		}
	}

	step, err := progression.GetNextQuestion(survey.ID, 7)
	if err != nil {
		t.Fatalf("final call failed: %v", err)
	}
	if step.Completed == nil || step.Completed.TotalQuestions != 5 {
		t.Fatalf("expected completion with 5 questions, got %+v", step)
	}
}

func TestNextQuestionNoQuestions(t *testing.T) {
	store := newFakeStore()
	survey := store.addSurvey(1, "Empty survey")
	progression, _ := newProgression(store)

	_, err := progression.GetNextQuestion(survey.ID, 7)
	if !errors.Is(err, model.ErrNoQuestions) {
		t.Fatalf("expected ErrNoQuestions, got %v", err)
	}
}

func TestNextQuestionInactiveSurvey(t *testing.T) {
	store := newFakeStore()
	survey := store.addSurvey(1, "Closed survey", 2)
	survey.IsActive = false
	if err := store.Update(survey); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	progression, _ := newProgression(store)

	_, err := progression.GetNextQuestion(survey.ID, 7)
	if !errors.Is(err, model.ErrSurveyNotFound) {
		t.Fatalf("expected ErrSurveyNotFound, got %v", err)
	}
}

func TestConcurrentFirstCallsCreateOneResponse(t *testing.T) {
	store := newFakeStore()
	survey := store.addSurvey(1, "Race survey", 2, 2)
	progression, _ := newProgression(store)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := progression.GetNextQuestion(survey.ID, 99); err != nil {
				t.Errorf("concurrent call failed: %v", err)
			}
		}()
	}
	wg.Wait()

	if store.responsesCreated != 1 {
		t.Fatalf("expected exactly one response row, got %d", store.responsesCreated)
	}
}
