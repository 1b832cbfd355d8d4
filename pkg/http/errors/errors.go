package errors

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse represents a standardized error response.
// Error carries the numeric status so clients can branch without reading headers.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
}

// RespondError writes a standardized error response to the HTTP response writer
func RespondError(w http.ResponseWriter, status int, code, message string) {
	write(w, status, ErrorResponse{
		Error:   status,
		Message: message,
		Code:    code,
	})
}

// RespondValidationError writes a 422 response naming the offending field
func RespondValidationError(w http.ResponseWriter, code, field string) {
	write(w, http.StatusUnprocessableEntity, ErrorResponse{
		Error:   http.StatusUnprocessableEntity,
		Message: MessageUnprocessable,
		Code:    code,
		Field:   field,
	})
}

// RespondBadRequest writes a 400 response
func RespondBadRequest(w http.ResponseWriter, code string) {
	RespondError(w, http.StatusBadRequest, code, MessageBadRequest)
}

// RespondNotFound writes a 404 response
func RespondNotFound(w http.ResponseWriter, code string) {
	RespondError(w, http.StatusNotFound, code, MessageNotFound)
}

// RespondMethodNotAllowed writes a 405 response
func RespondMethodNotAllowed(w http.ResponseWriter) {
	RespondError(w, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, MessageMethodNotAllowed)
}

// RespondUnprocessable writes a 422 response
func RespondUnprocessable(w http.ResponseWriter, code string) {
	RespondError(w, http.StatusUnprocessableEntity, code, MessageUnprocessable)
}

// RespondInternalError writes a 500 response
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, ErrCodeInternalError, MessageInternalError)
}

// RespondServiceUnavailable writes a 503 response
func RespondServiceUnavailable(w http.ResponseWriter, code string) {
	RespondError(w, http.StatusServiceUnavailable, code, MessageServiceUnavailable)
}

func write(w http.ResponseWriter, status int, body ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
