package service_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/lshigami/Meerkats/internal/dto"
	"github.com/lshigami/Meerkats/internal/model"
	"github.com/lshigami/Meerkats/internal/repository"
	"gorm.io/gorm"
)

// fakeStore is an in-memory stand-in for every repository interface, so the
// services can be exercised without a database. Mutations are serialized by a
// single mutex, which also makes the concurrency tests meaningful.
type fakeStore struct {
	mu sync.Mutex

	surveys   map[uint]*model.Survey
	questions map[uint]*model.Question
	options   map[uint]*model.AnswerOption
	responses map[uint]*model.SurveyResponse
	answers   map[uint]*model.Answer
	deleted   map[uint]bool

	nextID uint

	// responsesCreated counts GetOrCreate calls that actually inserted a row.
	responsesCreated int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		surveys:   make(map[uint]*model.Survey),
		questions: make(map[uint]*model.Question),
		options:   make(map[uint]*model.AnswerOption),
		responses: make(map[uint]*model.SurveyResponse),
		answers:   make(map[uint]*model.Answer),
		deleted:   make(map[uint]bool),
	}
}

func (f *fakeStore) id() uint {
	f.nextID++
	return f.nextID
}

// addSurvey seeds a survey; optionCounts gives one entry per question with the
// number of options to attach. Orders are assigned 0..n-1.
func (f *fakeStore) addSurvey(authorID uint, title string, optionCounts ...int) *model.Survey {
	f.mu.Lock()
	defer f.mu.Unlock()

	survey := &model.Survey{ID: f.id(), Title: title, AuthorID: authorID, IsActive: true, CreatedAt: time.Now()}
	for qi, n := range optionCounts {
		question := &model.Question{ID: f.id(), SurveyID: survey.ID, Text: title + " question", Order: qi}
		for oi := 0; oi < n; oi++ {
			option := &model.AnswerOption{ID: f.id(), QuestionID: question.ID, Text: "option", Order: oi}
			f.options[option.ID] = option
			question.AnswerOptions = append(question.AnswerOptions, *option)
		}
		f.questions[question.ID] = question
	}
	f.surveys[survey.ID] = survey
	return survey
}

func (f *fakeStore) questionsOf(surveyID uint) []model.Question {
	var questions []model.Question
	for _, q := range f.questions {
		if q.SurveyID == surveyID {
			questions = append(questions, *q)
		}
	}
	sort.Slice(questions, func(i, j int) bool { return questions[i].Order < questions[j].Order })
	return questions
}

// --- repository.SurveyRepository ---

func (f *fakeStore) Create(survey *model.Survey) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	survey.ID = f.id()
	survey.CreatedAt = time.Now()
	for qi := range survey.Questions {
		q := &survey.Questions[qi]
		q.ID = f.id()
		q.SurveyID = survey.ID
		for oi := range q.AnswerOptions {
			o := &q.AnswerOptions[oi]
			o.ID = f.id()
			o.QuestionID = q.ID
			f.options[o.ID] = &model.AnswerOption{ID: o.ID, QuestionID: q.ID, Text: o.Text, Order: o.Order}
		}
		stored := *q
		f.questions[q.ID] = &stored
	}
	stored := *survey
	f.surveys[survey.ID] = &stored
	return nil
}

func (f *fakeStore) Update(survey *model.Survey) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *survey
	f.surveys[survey.ID] = &stored
	return nil
}

func (f *fakeStore) Delete(id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted[id] = true
	return nil
}

func (f *fakeStore) FindByID(id uint) (*model.Survey, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	survey, ok := f.surveys[id]
	if !ok || f.deleted[id] {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *survey
	return &copied, nil
}

func (f *fakeStore) FindActiveByID(id uint) (*model.Survey, error) {
	survey, err := f.FindByID(id)
	if err != nil || !survey.IsActive {
		return nil, gorm.ErrRecordNotFound
	}
	return survey, nil
}

func (f *fakeStore) FindActiveByIDWithQuestions(id uint) (*model.Survey, error) {
	survey, err := f.FindActiveByID(id)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	survey.Questions = f.questionsOf(id)
	return survey, nil
}

func (f *fakeStore) FindAllActiveWithQuestionCount() ([]repository.SurveyWithQuestionCount, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var results []repository.SurveyWithQuestionCount
	for id, survey := range f.surveys {
		if !survey.IsActive || f.deleted[id] {
			continue
		}
		results = append(results, repository.SurveyWithQuestionCount{Survey: *survey, QuestionCount: len(f.questionsOf(id))})
	}
	return results, nil
}

func (f *fakeStore) FindByAuthorWithQuestionCount(authorID uint) ([]repository.SurveyWithQuestionCount, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var results []repository.SurveyWithQuestionCount
	for id, survey := range f.surveys {
		if survey.AuthorID != authorID || f.deleted[id] {
			continue
		}
		results = append(results, repository.SurveyWithQuestionCount{Survey: *survey, QuestionCount: len(f.questionsOf(id))})
	}
	return results, nil
}

// --- repository.QuestionRepository ---

func (f *fakeStore) FindBySurveyID(surveyID uint) ([]model.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.questionsOf(surveyID), nil
}

func (f *fakeStore) FindBySurvey(id, surveyID uint) (*model.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	question, ok := f.questions[id]
	if !ok || question.SurveyID != surveyID {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *question
	return &copied, nil
}

func (f *fakeStore) FindOptionByQuestion(optionID, questionID uint) (*model.AnswerOption, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	option, ok := f.options[optionID]
	if !ok || option.QuestionID != questionID {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *option
	return &copied, nil
}

// --- repository.ResponseRepository ---

func (f *fakeStore) GetOrCreate(surveyID, userID uint) (*model.SurveyResponse, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, response := range f.responses {
		if response.SurveyID == surveyID && response.UserID == userID {
			copied := *response
			return &copied, false, nil
		}
	}
	response := &model.SurveyResponse{ID: f.id(), SurveyID: surveyID, UserID: userID, StartedAt: time.Now()}
	f.responses[response.ID] = response
	f.responsesCreated++
	copied := *response
	return &copied, true, nil
}

func (f *fakeStore) FindResponseByID(id uint) (*model.SurveyResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	response, ok := f.responses[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *response
	return &copied, nil
}

func (f *fakeStore) MarkCompleted(id uint, completedAt time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	response, ok := f.responses[id]
	if !ok || response.IsCompleted {
		return false, nil
	}
	response.IsCompleted = true
	response.CompletedAt = &completedAt
	return true, nil
}

func (f *fakeStore) CountBySurvey(surveyID uint) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, response := range f.responses {
		if response.SurveyID == surveyID {
			count++
		}
	}
	return count, nil
}

func (f *fakeStore) CountCompletedBySurvey(surveyID uint) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, response := range f.responses {
		if response.SurveyID == surveyID && response.IsCompleted {
			count++
		}
	}
	return count, nil
}

func (f *fakeStore) FindCompletedBySurvey(surveyID uint) ([]model.SurveyResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var responses []model.SurveyResponse
	for _, response := range f.responses {
		if response.SurveyID == surveyID && response.IsCompleted && response.CompletedAt != nil {
			responses = append(responses, *response)
		}
	}
	return responses, nil
}

// --- repository.AnswerRepository ---

func (f *fakeStore) Upsert(responseID, questionID, optionID uint) (*model.Answer, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, answer := range f.answers {
		if answer.SurveyResponseID == responseID && answer.QuestionID == questionID {
			answer.AnswerOptionID = optionID
			answer.AnsweredAt = time.Now()
			copied := *answer
			return &copied, false, nil
		}
	}
	answer := &model.Answer{ID: f.id(), SurveyResponseID: responseID, QuestionID: questionID, AnswerOptionID: optionID, AnsweredAt: time.Now()}
	f.answers[answer.ID] = answer
	copied := *answer
	return &copied, true, nil
}

func (f *fakeStore) AnsweredQuestionIDs(responseID uint) (map[uint]struct{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	set := make(map[uint]struct{})
	for _, answer := range f.answers {
		if answer.SurveyResponseID == responseID {
			set[answer.QuestionID] = struct{}{}
		}
	}
	return set, nil
}

func (f *fakeStore) CountByOption(questionID uint) ([]repository.OptionCount, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	question, ok := f.questions[questionID]
	if !ok {
		return nil, nil
	}
	var counts []repository.OptionCount
	for _, option := range question.AnswerOptions {
		var count int64
		for _, answer := range f.answers {
			if answer.QuestionID == questionID && answer.AnswerOptionID == option.ID {
				count++
			}
		}
		counts = append(counts, repository.OptionCount{OptionID: option.ID, OptionText: option.Text, Count: count})
	}
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].Count > counts[j].Count })
	return counts, nil
}

// responseRepoAdapter maps the ResponseRepository FindByID name onto the
// store's FindResponseByID (FindByID is taken by the survey side).
type responseRepoAdapter struct{ *fakeStore }

func (a responseRepoAdapter) FindByID(id uint) (*model.SurveyResponse, error) {
	return a.FindResponseByID(id)
}

func (f *fakeStore) responseRepo() repository.ResponseRepository {
	return responseRepoAdapter{f}
}

// --- cache.StatsCache ---

type fakeStatsCache struct {
	mu      sync.Mutex
	entries map[uint]*dto.SurveyStatsDTO

	invalidations int
}

func newFakeStatsCache() *fakeStatsCache {
	return &fakeStatsCache{entries: make(map[uint]*dto.SurveyStatsDTO)}
}

func (c *fakeStatsCache) Get(_ context.Context, surveyID uint) (*dto.SurveyStatsDTO, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries[surveyID], nil
}

func (c *fakeStatsCache) Set(_ context.Context, stats *dto.SurveyStatsDTO) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[stats.SurveyID] = stats
	return nil
}

func (c *fakeStatsCache) Invalidate(_ context.Context, surveyID uint) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, surveyID)
	c.invalidations++
	return nil
}
