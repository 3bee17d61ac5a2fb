// Package input loads raw puzzle inputs from the puzzle site, local files, or the cache.
package input

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrMissingToken indicates a download was attempted without a session token.
var ErrMissingToken = errors.New("session token is not set")

// Source loads the raw input for a puzzle day.
type Source interface {
	Load(ctx context.Context, day int) (string, error)
}

// Normalize trims surrounding whitespace and removes carriage returns.
func Normalize(raw string) string {
	return strings.ReplaceAll(strings.TrimSpace(raw), "\r", "")
}

// FetchError reports a non-200 response from the puzzle site.
type FetchError struct {
	url        string
	statusCode int
	body       string
}

// NewFetchError creates a FetchError.
func NewFetchError(url string, statusCode int, body string) *FetchError {
	return &FetchError{url: url, statusCode: statusCode, body: body}
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	msg := fmt.Sprintf("fetch %s: status %d", e.url, e.statusCode)
	if e.body != "" {
		msg += ": " + e.body
	}
	return msg
}

// URL returns the requested URL.
func (e *FetchError) URL() string { return e.url }

// StatusCode returns the HTTP status code.
func (e *FetchError) StatusCode() int { return e.statusCode }

// Retryable reports whether the request may succeed if repeated.
func (e *FetchError) Retryable() bool {
	switch e.statusCode {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}
