// Package dto holds the HTTP wire types shared by the handlers: the error
// envelope, request validation and cursor pagination.
package dto

import "net/http"

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	TraceID string      `json:"traceId,omitempty"`
}

// ErrorDetail is the machine-readable part of ErrorResponse. Details maps
// JSON field names to messages for validation failures.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// Error codes.
const (
	ErrorCodeNotFound         = "NOT_FOUND"
	ErrorCodeConflict         = "CONFLICT"
	ErrorCodeValidation       = "VALIDATION_ERROR"
	ErrorCodeBadRequest       = "BAD_REQUEST"
	ErrorCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	ErrorCodeTimeout          = "TIMEOUT"
	ErrorCodeInternal         = "INTERNAL_ERROR"
)

var codeStatus = map[string]int{
	ErrorCodeNotFound:         http.StatusNotFound,
	ErrorCodeConflict:         http.StatusConflict,
	ErrorCodeValidation:       http.StatusBadRequest,
	ErrorCodeBadRequest:       http.StatusBadRequest,
	ErrorCodeMethodNotAllowed: http.StatusMethodNotAllowed,
	ErrorCodeTimeout:          http.StatusGatewayTimeout,
	ErrorCodeInternal:         http.StatusInternalServerError,
}

// NewErrorResponse creates an envelope without details.
func NewErrorResponse(code, message string) *ErrorResponse {
	return &ErrorResponse{Error: ErrorDetail{Code: code, Message: message}}
}

// NewErrorResponseWithDetails creates an envelope with per-field details.
func NewErrorResponseWithDetails(code, message string, details map[string]string) *ErrorResponse {
	resp := NewErrorResponse(code, message)
	resp.Error.Details = details

	return resp
}

// WithTraceID sets the trace ID and returns e.
func (e *ErrorResponse) WithTraceID(traceID string) *ErrorResponse {
	e.TraceID = traceID
	return e
}

// HTTPStatusFromCode returns the status for an error code. Unknown codes are
// 500.
func HTTPStatusFromCode(code string) int {
	if status, ok := codeStatus[code]; ok {
		return status
	}

	return http.StatusInternalServerError
}
