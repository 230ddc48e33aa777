package apierrors

import (
	"errors"
	"net/http"

	"vinoteca-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Package-level logger that uses context for observability
var logger = observability.NewLogger()

// ErrorResponse is the JSON structure returned to API clients for errors
type ErrorResponse struct {
	Error   string `json:"error"`             // User-friendly error message
	Code    string `json:"code,omitempty"`    // Machine-readable error code
	Details string `json:"details,omitempty"` // Raw upstream body for provider failures
}

// RespondWithError handles error logging and sends a JSON error response
// to the client.
//
// It performs the following:
// 1. Converts the error to an APIError (using MapError if necessary)
// 2. Logs the API response for correlation (processor already logged the detailed error)
// 3. Sends the error response to the client
func RespondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	ctx := c.Request.Context()

	// Convert to APIError
	apiErr := MapError(err)

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "status_code", Value: apiErr.StatusCode},
		observability.Field{Key: "error_code", Value: apiErr.Code},
		observability.Field{Key: "error_message", Value: apiErr.Message},
	)
	logger.Info(ctx, "API error response")

	c.JSON(apiErr.StatusCode, ErrorResponse{
		Error:   apiErr.Message,
		Code:    apiErr.Code,
		Details: apiErr.Details,
	})
}

// RespondWithValidationError handles Gin binding/validation errors and
// returns structured validation error responses.
//
// This should be used when c.ShouldBindJSON or similar binding functions fail.
func RespondWithValidationError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	ctx := c.Request.Context()

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		logger.Error(ctx, "validation failed", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: buildValidationMessage(validationErrs),
			Code:  CodeInvalidInput,
		})
		return
	}

	// Not a validation error - might be a JSON parsing error or other binding issue
	logger.Error(ctx, "request binding failed", err)
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error: "Invalid request format. Please check your JSON syntax.",
		Code:  CodeInvalidInput,
	})
}
