package input

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/helixml/almanac/domain/puzzle"
	"github.com/helixml/almanac/internal/database"
)

// CachedSource serves inputs from a store and falls back to another Source on a miss.
type CachedSource struct {
	next   Source
	store  puzzle.InputStore
	year   int
	logger *slog.Logger
}

// NewCachedSource creates a CachedSource for the given event year.
func NewCachedSource(next Source, store puzzle.InputStore, year int, logger *slog.Logger) *CachedSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &CachedSource{next: next, store: store, year: year, logger: logger}
}

// Load returns the cached input, downloading and storing it on a miss.
// A failure to write the cache is logged and does not fail the load.
func (s *CachedSource) Load(ctx context.Context, day int) (string, error) {
	cached, err := s.store.Get(ctx, s.year, day)
	if err == nil {
		s.logger.Debug("input cache hit", "year", s.year, "day", day)
		return cached.Content(), nil
	}
	if !errors.Is(err, database.ErrNotFound) {
		return "", fmt.Errorf("read input cache: %w", err)
	}

	content, err := s.next.Load(ctx, day)
	if err != nil {
		return "", err
	}

	if err := s.store.Save(ctx, puzzle.NewInput(s.year, day, content)); err != nil {
		s.logger.Warn("failed to cache input", "year", s.year, "day", day, "error", err)
	}
	return content, nil
}

// Forget drops the cached input for day so the next Load downloads it again.
func (s *CachedSource) Forget(ctx context.Context, day int) error {
	if err := s.store.Delete(ctx, s.year, day); err != nil {
		return fmt.Errorf("forget cached input: %w", err)
	}
	s.logger.Debug("input cache entry dropped", "year", s.year, "day", day)
	return nil
}
