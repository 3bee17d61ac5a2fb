package input

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/helixml/almanac/internal/config"
)

const maxErrorBody = 256

// HTTPSource downloads inputs from the puzzle site using a session cookie.
type HTTPSource struct {
	cfg          config.SourceConfig
	token        string
	client       *http.Client
	maxRetries   int
	initialDelay time.Duration
}

// HTTPOption configures an HTTPSource.
type HTTPOption func(*HTTPSource)

// WithHTTPClient sets the HTTP client.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(s *HTTPSource) { s.client = c }
}

// WithRetries sets how many times a retryable failure is repeated and the first backoff delay.
func WithRetries(n int, initialDelay time.Duration) HTTPOption {
	return func(s *HTTPSource) {
		s.maxRetries = max(n, 0)
		s.initialDelay = initialDelay
	}
}

// NewHTTPSource creates an HTTPSource.
func NewHTTPSource(cfg config.SourceConfig, token string, opts ...HTTPOption) *HTTPSource {
	s := &HTTPSource{
		cfg:          cfg,
		token:        strings.TrimSpace(token),
		client:       &http.Client{Timeout: cfg.Timeout()},
		maxRetries:   2,
		initialDelay: time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load downloads the input for day.
func (s *HTTPSource) Load(ctx context.Context, day int) (string, error) {
	if s.token == "" {
		return "", ErrMissingToken
	}

	url := s.cfg.InputURL(day)
	delay := s.initialDelay
	var lastErr error

	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		body, err := s.fetch(ctx, url)
		if err == nil {
			return Normalize(body), nil
		}
		lastErr = err

		var fetchErr *FetchError
		if !errors.As(err, &fetchErr) || !fetchErr.Retryable() || attempt == s.maxRetries {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delay):
			delay *= 2
		}
	}

	return "", lastErr
}

func (s *HTTPSource) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Cookie", "session="+s.token)
	req.Header.Set("User-Agent", "almanac")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", NewFetchError(url, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", url, err)
	}
	return string(body), nil
}
