package model

import "time"

// Answer records the chosen option for one question within one response.
// The (response, question) unique index makes resubmission an update, never a
// second row.
type Answer struct {
	ID               uint         `gorm:"primarykey" json:"id"`
	SurveyResponseID uint         `json:"survey_response_id" gorm:"not null;uniqueIndex:idx_answers_response_question"`
	QuestionID       uint         `json:"question_id" gorm:"not null;uniqueIndex:idx_answers_response_question;index"`
	Question         Question     `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	AnswerOptionID   uint         `json:"answer_option_id" gorm:"not null;index"`
	AnswerOption     AnswerOption `json:"answer_option,omitempty" gorm:"foreignKey:AnswerOptionID"`
	AnsweredAt       time.Time    `json:"answered_at"`
}
