package trivia

import "errors"

// Not-found class: the request was well formed but produced nothing to show.
var (
	ErrPageNotFound     = errors.New("page not found")
	ErrNoMatches        = errors.New("no questions match search term")
	ErrQuizFieldMissing = errors.New("required quiz field missing")
)

// Unprocessable class: the request references or carries something the store cannot act on.
var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrInvalidQuestion  = errors.New("invalid question")
	ErrSearchTermLength = errors.New("search term too long")
)

// ValidationError names the field that failed question validation.
type ValidationError struct {
	Field   string
	Tag     string // failed rule, e.g. "required"
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidQuestion
}
