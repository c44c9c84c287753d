package model

import "time"

// Question order is unique within a survey and fixed at creation time.
type Question struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	SurveyID      uint           `json:"survey_id" gorm:"not null;uniqueIndex:idx_questions_survey_order"`
	Text          string         `json:"text" gorm:"type:text;not null"`
	Order         int            `json:"order" gorm:"column:display_order;not null;uniqueIndex:idx_questions_survey_order"`
	AnswerOptions []AnswerOption `json:"answer_options,omitempty" gorm:"foreignKey:QuestionID"`
	CreatedAt     time.Time      `json:"created_at"`
}
