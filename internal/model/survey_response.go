package model

import "time"

// SurveyResponse is one user's single pass through a survey. The (survey, user)
// unique index backs the idempotent get-or-create; completion is one-way.
type SurveyResponse struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	SurveyID    uint       `json:"survey_id" gorm:"not null;uniqueIndex:idx_responses_survey_user"`
	Survey      Survey     `json:"survey,omitempty" gorm:"foreignKey:SurveyID"`
	UserID      uint       `json:"user_id" gorm:"not null;uniqueIndex:idx_responses_survey_user"`
	StartedAt   time.Time  `json:"started_at" gorm:"autoCreateTime"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	IsCompleted bool       `json:"is_completed" gorm:"not null;default:false;index"`
	Answers     []Answer   `json:"answers,omitempty" gorm:"foreignKey:SurveyResponseID"`
}
