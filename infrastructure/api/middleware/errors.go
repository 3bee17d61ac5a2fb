package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/helixml/almanac/application/service"
	"github.com/helixml/almanac/application/solution"
	"github.com/helixml/almanac/domain/almanac"
	"github.com/helixml/almanac/domain/puzzle"
	"github.com/helixml/almanac/infrastructure/almanacdoc"
	"github.com/helixml/almanac/infrastructure/input"
	"github.com/helixml/almanac/internal/log"
)

// APIError is an error with an explicit HTTP status.
type APIError struct {
	code    int
	message string
	cause   error
}

// NewAPIError creates an APIError.
func NewAPIError(code int, message string, cause error) *APIError {
	return &APIError{code: code, message: message, cause: cause}
}

// BadRequest wraps cause as a 400 error.
func BadRequest(message string, cause error) *APIError {
	return NewAPIError(http.StatusBadRequest, message, cause)
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("api error %d: %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("api error %d: %s", e.code, e.message)
}

// Unwrap returns the underlying cause.
func (e *APIError) Unwrap() error { return e.cause }

// Code returns the HTTP status code.
func (e *APIError) Code() int { return e.code }

// Message returns the error message.
func (e *APIError) Message() string { return e.message }

// ErrorBody is one entry of an error response.
type ErrorBody struct {
	Status string `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail,omitempty"`
	ID     string `json:"id,omitempty"`
}

// ErrorResponse is the body written for every failed request.
type ErrorResponse struct {
	Errors []ErrorBody `json:"errors"`
}

var badRequestErrors = []error{
	almanac.ErrInvalidRule,
	almanac.ErrInvalidInterval,
	almanac.ErrEmptyInput,
	solution.ErrParse,
	puzzle.ErrInvalidDay,
	puzzle.ErrInvalidPart,
	service.ErrInvalidMode,
	almanacdoc.ErrUnknownFormat,
}

// StatusFor maps an error onto an HTTP status and title.
func StatusFor(err error) (int, string) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code(), http.StatusText(apiErr.Code())
	}
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest, "Validation Error"
		}
	}
	switch {
	case errors.Is(err, puzzle.ErrNotImplemented):
		return http.StatusNotFound, "Not Found"
	case errors.Is(err, input.ErrMissingToken):
		return http.StatusServiceUnavailable, "Input Unavailable"
	}
	return http.StatusInternalServerError, "Internal Server Error"
}

// WriteError writes an error response and logs it.
func WriteError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	status, title := StatusFor(err)
	correlationID := log.CorrelationID(r.Context())

	if logger != nil {
		level := slog.LevelWarn
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(r.Context(), level, "request error",
			"correlation_id", correlationID,
			"status", status,
			"error", err,
			"path", r.URL.Path,
		)
	}

	WriteJSON(w, status, ErrorResponse{Errors: []ErrorBody{{
		Status: http.StatusText(status),
		Title:  title,
		Detail: err.Error(),
		ID:     correlationID,
	}}})
}

// WriteJSON writes a JSON response.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
