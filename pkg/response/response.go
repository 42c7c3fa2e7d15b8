// Package response centralizes HTTP response shapes and helpers.
// Handlers rely on it to keep controllers thin and uniform.
package response

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/pagewindow/internal/service"
)

// ErrorPayload is the canonical error envelope returned by the API.
type ErrorPayload struct {
	Error       string               `json:"error"`
	Message     string               `json:"message,omitempty"`
	FieldErrors []service.FieldError `json:"field_errors,omitempty"`
}

// MapError converts a domain error into an HTTP status and payload.
func MapError(err error) (int, ErrorPayload) {
	if err == nil {
		return http.StatusOK, ErrorPayload{Error: "ok"}
	}

	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest, ErrorPayload{
			Error:       "invalid_input",
			Message:     "one or more fields are invalid",
			FieldErrors: service.FieldErrors(err),
		}
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, ErrorPayload{Error: "request_aborted"}
	default:
		return http.StatusInternalServerError, ErrorPayload{Error: "internal_error"}
	}
}

// WriteError writes an error response and aborts the context.
func WriteError(c *gin.Context, err error) {
	status, payload := MapError(err)
	c.AbortWithStatusJSON(status, payload)
}

// WriteData writes a successful JSON response.
func WriteData(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}
