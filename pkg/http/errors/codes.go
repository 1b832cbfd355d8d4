package errors

// Error codes for standardized error responses
const (
	// Request errors
	ErrCodeInvalidRequest   = "invalid_request"
	ErrCodeMethodNotAllowed = "method_not_allowed"
	ErrCodeValidationFailed = "validation_failed"
	ErrCodeMissingField     = "missing_field"
	ErrCodeInvalidID        = "invalid_id"

	// Resource errors
	ErrCodePageNotFound     = "page_not_found"
	ErrCodeNoMatches        = "no_matches"
	ErrCodeCategoryNotFound = "category_not_found"
	ErrCodeQuestionNotFound = "question_not_found"
	ErrCodeRouteNotFound    = "route_not_found"

	// Business logic errors
	ErrCodeSearchTermTooLong = "search_term_too_long"
	ErrCodeStoreFailure      = "store_failure"

	// Server errors
	ErrCodeInternalError      = "internal_error"
	ErrCodeServiceUnavailable = "service_unavailable"
)

// Stable client-facing messages keyed by status class.
const (
	MessageBadRequest         = "bad request"
	MessageNotFound           = "not found"
	MessageMethodNotAllowed   = "method not allowed"
	MessageUnprocessable      = "unprocessable"
	MessageInternalError      = "internal server error"
	MessageServiceUnavailable = "service unavailable"
)
