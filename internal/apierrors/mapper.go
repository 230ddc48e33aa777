package apierrors

import (
	"errors"
	"net/http"

	assistantProcessor "vinoteca-server/internal/assistant/processor"
	"vinoteca-server/internal/assistant/provider"
	"vinoteca-server/internal/store"
)

// MapError converts domain/processor errors to APIErrors.
// This function centralizes all error mapping logic to ensure consistent
// error responses across the entire API.
//
// If the error is already an APIError, it returns it as-is.
// If the error is a known domain error, it maps it to an appropriate APIError.
// If the error is unknown, it returns an InternalError (500).
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	// Check if already an APIError
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	// Upstream provider failures pass their status and raw body through.
	var upstreamErr *provider.UpstreamError
	if errors.As(err, &upstreamErr) {
		return Upstream(upstreamErr.StatusCode, "AI API error", upstreamErr.Body)
	}

	switch {
	case errors.Is(err, assistantProcessor.ErrConnectionNotFound):
		return NotFound(CodeConnectionNotFound, "Connection not found")

	case errors.Is(err, assistantProcessor.ErrUnsupportedProvider):
		return BadRequest(CodeUnsupportedProvider, "Unsupported provider")

	case errors.Is(err, assistantProcessor.ErrAPIKeyRequired):
		return BadRequest(CodeInvalidInput, "API key is required for this provider")

	case errors.Is(err, assistantProcessor.ErrEmptyConversation):
		return BadRequest(CodeInvalidInput, "Conversation has no messages")

	case errors.Is(err, assistantProcessor.ErrLovableNotConfigured):
		return &APIError{StatusCode: http.StatusInternalServerError, Code: CodeInternalError, Message: "Lovable AI not configured"}

	case errors.Is(err, provider.ErrUnsupportedProvider):
		return BadRequest(CodeUnsupportedProvider, "Unsupported provider")

	case errors.Is(err, store.ErrNotFound):
		return NotFound(CodeNotFound, "Resource not found")

	default:
		return InternalError(err)
	}
}
