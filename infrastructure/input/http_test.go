package input

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helixml/almanac/internal/config"
)

func sourceConfig(url string) config.SourceConfig {
	return config.NewSourceConfigWithOptions(
		config.WithBaseURL(url),
		config.WithYear(2023),
		config.WithSourceTimeout(5*time.Second),
	)
}

func TestHTTPSource_Load(t *testing.T) {
	var gotPath, gotCookie string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotCookie = r.Header.Get("Cookie")
		_, _ = w.Write([]byte("seeds: 1 2\r\n\r\nseed-to-soil map:\r\n3 4 5\r\n\n"))
	}))
	defer srv.Close()

	src := NewHTTPSource(sourceConfig(srv.URL), "abc123")
	got, err := src.Load(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, "/2023/day/5/input", gotPath)
	assert.Equal(t, "session=abc123", gotCookie)
	assert.Equal(t, "seeds: 1 2\n\nseed-to-soil map:\n3 4 5", got)
}

func TestHTTPSource_MissingToken(t *testing.T) {
	src := NewHTTPSource(sourceConfig("http://127.0.0.1:0"), "   ")
	_, err := src.Load(context.Background(), 5)
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestHTTPSource_NotFoundIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		http.Error(w, "Please don't repeatedly request this endpoint before it unlocks!", http.StatusNotFound)
	}))
	defer srv.Close()

	src := NewHTTPSource(sourceConfig(srv.URL), "tok", WithRetries(3, time.Millisecond))
	_, err := src.Load(context.Background(), 25)

	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, http.StatusNotFound, fetchErr.StatusCode())
	assert.Contains(t, err.Error(), "before it unlocks")
	assert.Equal(t, int32(1), calls.Load())
}

func TestHTTPSource_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("ok\n"))
	}))
	defer srv.Close()

	src := NewHTTPSource(sourceConfig(srv.URL), "tok", WithRetries(2, time.Millisecond))
	got, err := src.Load(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, int32(3), calls.Load())
}

func TestHTTPSource_GivesUpAfterRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	src := NewHTTPSource(sourceConfig(srv.URL), "tok", WithRetries(1, time.Millisecond))
	_, err := src.Load(context.Background(), 1)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.True(t, fetchErr.Retryable())
	assert.Equal(t, int32(2), calls.Load())
}

func TestHTTPSource_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	src := NewHTTPSource(sourceConfig(srv.URL), "tok", WithRetries(5, time.Hour))

	done := make(chan error, 1)
	go func() {
		_, err := src.Load(ctx, 1)
		done <- err
	}()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Load did not return after cancel")
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "a\nb", Normalize("\n  a\r\nb\r\n  "))
	assert.Equal(t, "", Normalize("\r\n"))
}
