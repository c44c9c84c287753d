package dto

// AnswerOptionCreateDTO is one option within a question being authored.
type AnswerOptionCreateDTO struct {
	Text  string `json:"text" binding:"required"`
	Order *int   `json:"order" binding:"required"`
}

// QuestionCreateDTO is one question within a survey being authored.
type QuestionCreateDTO struct {
	Text          string                  `json:"text" binding:"required"`
	Order         *int                    `json:"order" binding:"required"`
	AnswerOptions []AnswerOptionCreateDTO `json:"answer_options" binding:"required,min=2"`
}

// SurveyCreateDTO is the authoring payload for a full survey with nested
// questions and options.
type SurveyCreateDTO struct {
	Title     string              `json:"title" binding:"required"`
	Questions []QuestionCreateDTO `json:"questions" binding:"required,min=1"`
}

// SurveyUpdateDTO carries the mutable survey attributes. Question and option
// ordering is fixed at creation and not editable here.
type SurveyUpdateDTO struct {
	Title    *string `json:"title,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// AnswerSubmitDTO is a respondent's answer to a single question.
type AnswerSubmitDTO struct {
	QuestionID     uint `json:"question_id" binding:"required"`
	AnswerOptionID uint `json:"answer_option_id" binding:"required"`
}
