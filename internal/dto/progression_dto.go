package dto

import "time"

// ProgressDTO reports position within a survey. Percentage reflects questions
// already answered, excluding the one currently being served.
type ProgressDTO struct {
	Current    int     `json:"current"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// NextQuestionDTO is the "keep going" variant of a next-question call.
type NextQuestionDTO struct {
	Question QuestionDTO `json:"question"`
	IsLast   bool        `json:"is_last"`
	Progress ProgressDTO `json:"progress"`
}

// CompletedDTO is returned once every question of the survey is answered.
type CompletedDTO struct {
	Message        string     `json:"message"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	TotalQuestions int        `json:"total_questions,omitempty"`
}

// NextStepDTO is the tagged union returned by the progression engine: exactly
// one of NextQuestion or Completed is set.
type NextStepDTO struct {
	NextQuestion *NextQuestionDTO `json:"next_question,omitempty"`
	Completed    *CompletedDTO    `json:"completed,omitempty"`
}

// AnswerResultDTO reports the outcome of an answer submission.
type AnswerResultDTO struct {
	AnswerID uint `json:"answer_id"`
	Created  bool `json:"created"`
}
