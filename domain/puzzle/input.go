package puzzle

import (
	"context"
	"time"
)

// Input is the raw puzzle text for one day of one event year.
type Input struct {
	year      int
	day       int
	content   string
	fetchedAt time.Time
}

// NewInput creates an Input fetched now.
func NewInput(year, day int, content string) Input {
	return Input{year: year, day: day, content: content, fetchedAt: time.Now().UTC()}
}

// ReconstructInput recreates an Input from persistence.
func ReconstructInput(year, day int, content string, fetchedAt time.Time) Input {
	return Input{year: year, day: day, content: content, fetchedAt: fetchedAt}
}

// Year returns the event year.
func (i Input) Year() int { return i.year }

// Day returns the puzzle day.
func (i Input) Day() int { return i.day }

// Content returns the puzzle text.
func (i Input) Content() string { return i.content }

// FetchedAt returns when the input was downloaded.
func (i Input) FetchedAt() time.Time { return i.fetchedAt }

// InputStore caches downloaded inputs.
type InputStore interface {
	// Get returns the cached input for year and day, or an error wrapping a not-found sentinel.
	Get(ctx context.Context, year, day int) (Input, error)
	// Save inserts or replaces the cached input.
	Save(ctx context.Context, input Input) error
	// Delete drops the cached input for year and day, if any.
	Delete(ctx context.Context, year, day int) error
}
