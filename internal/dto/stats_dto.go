package dto

// OptionStatsDTO is the per-option slice of a question's answer distribution.
type OptionStatsDTO struct {
	OptionID   uint    `json:"option_id"`
	OptionText string  `json:"option_text"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

// QuestionStatsDTO aggregates all recorded answers for one question, options
// ordered by descending count.
type QuestionStatsDTO struct {
	QuestionID   uint             `json:"question_id"`
	QuestionText string           `json:"question_text"`
	Order        int              `json:"order"`
	TotalAnswers int64            `json:"total_answers"`
	Options      []OptionStatsDTO `json:"options"`
}

// SurveyStatsDTO is the author-facing aggregate report for one survey.
type SurveyStatsDTO struct {
	SurveyID                 uint               `json:"survey_id"`
	SurveyTitle              string             `json:"survey_title"`
	TotalResponses           int64              `json:"total_responses"`
	CompletedResponses       int64              `json:"completed_responses"`
	CompletionRate           float64            `json:"completion_rate"`
	AvgCompletionTimeSeconds *float64           `json:"avg_completion_time_seconds"`
	QuestionsStatistics      []QuestionStatsDTO `json:"questions_statistics"`
}
