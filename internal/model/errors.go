package model

import "errors"

var (
	// ErrSurveyNotFound is returned when a survey does not exist or is inactive.
	ErrSurveyNotFound = errors.New("survey not found")
	// ErrQuestionNotFound indicates the question does not belong to the survey.
	ErrQuestionNotFound = errors.New("question not found in this survey")
	// ErrOptionNotFound indicates the option does not belong to the question.
	ErrOptionNotFound = errors.New("answer option not found for this question")
	// ErrNoQuestions is returned when a survey has no questions to serve.
	ErrNoQuestions = errors.New("survey has no questions")
	// ErrAlreadyCompleted rejects mutations on a finished response.
	ErrAlreadyCompleted = errors.New("survey response already completed")
	// ErrForbidden is returned when a non-author requests survey statistics.
	ErrForbidden = errors.New("only the survey author may view statistics")
	// ErrInvalidInput covers missing or malformed identifiers in a submission.
	ErrInvalidInput = errors.New("question_id and answer_option_id are required")
	// ErrConflict is returned when a concurrent write is not resolved by the
	// store-level retry.
	ErrConflict = errors.New("conflicting concurrent write")
	// ErrUserExists is returned on registration with a taken username or email.
	ErrUserExists = errors.New("username or email already registered")
	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid username or password")
)
