package apierrors

import (
	"fmt"
	"net/http"
)

// Machine-readable error codes returned alongside messages.
const (
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeNotFound            = "NOT_FOUND"
	CodeConnectionNotFound  = "CONNECTION_NOT_FOUND"
	CodeWineNotFound        = "WINE_NOT_FOUND"
	CodeUnsupportedProvider = "UNSUPPORTED_PROVIDER"
	CodeInvalidInput        = "INVALID_INPUT"
	CodeUpstreamError       = "UPSTREAM_ERROR"
	CodeInternalError       = "INTERNAL_ERROR"
)

// APIError is the internal representation of an error response: an HTTP
// status, a machine-readable code, a message, and optionally the raw
// upstream body for provider failures.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Details    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NotFound builds a 404 error
func NotFound(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusNotFound, Code: code, Message: message}
}

// BadRequest builds a 400 error
func BadRequest(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Code: code, Message: message}
}

// Unauthorized builds a 401 error
func Unauthorized(message string) *APIError {
	return &APIError{StatusCode: http.StatusUnauthorized, Code: CodeUnauthorized, Message: message}
}

// Upstream builds an error that passes the provider's status through and
// carries its raw body for operator diagnosis.
func Upstream(statusCode int, message, details string) *APIError {
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusBadGateway
	}
	return &APIError{StatusCode: statusCode, Code: CodeUpstreamError, Message: message, Details: details}
}

// InternalError builds a 500 error carrying the underlying message.
func InternalError(err error) *APIError {
	return &APIError{StatusCode: http.StatusInternalServerError, Code: CodeInternalError, Message: err.Error()}
}
