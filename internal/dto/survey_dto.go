package dto

import "time"

// AnswerOptionDTO is used for displaying options to respondents.
type AnswerOptionDTO struct {
	ID    uint   `json:"id"`
	Text  string `json:"text"`
	Order int    `json:"order"`
}

// QuestionDTO is used for displaying a question with its ordered options.
type QuestionDTO struct {
	ID            uint              `json:"id"`
	SurveyID      uint              `json:"survey_id"`
	Text          string            `json:"text"`
	Order         int               `json:"order"`
	AnswerOptions []AnswerOptionDTO `json:"answer_options"`
}

// SurveyResponseDTO is used for displaying full survey details.
type SurveyResponseDTO struct {
	ID        uint          `json:"id"`
	Title     string        `json:"title"`
	AuthorID  uint          `json:"author_id"`
	IsActive  bool          `json:"is_active"`
	Questions []QuestionDTO `json:"questions,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// SurveySummaryDTO is used for listing surveys.
type SurveySummaryDTO struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	AuthorID      uint      `json:"author_id"`
	IsActive      bool      `json:"is_active"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
}
