package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/helixml/almanac/domain/almanac"
)

// SeedMode selects how a document's seeds become intervals.
type SeedMode string

// SeedMode values.
const (
	// SeedPoints treats every seed as a single value.
	SeedPoints SeedMode = "points"
	// SeedRanges treats seeds as start/length pairs.
	SeedRanges SeedMode = "ranges"
)

// ParseSeedMode accepts "points"/"ranges" and the part letters "a"/"b".
func ParseSeedMode(s string) (SeedMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "points", "a":
		return SeedPoints, nil
	case "ranges", "b":
		return SeedRanges, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// Minimum is the answer to a minimum-reachable query.
type Minimum struct {
	Value     uint64
	Intervals []almanac.Interval
	Elapsed   time.Duration
}

// Almanac answers queries over structured almanac documents.
type Almanac struct {
	workers int
	logger  *slog.Logger
}

// NewAlmanac creates an Almanac service that maps each stage with workers goroutines.
func NewAlmanac(workers int, logger *slog.Logger) *Almanac {
	if logger == nil {
		logger = slog.Default()
	}
	return &Almanac{workers: max(workers, 1), logger: logger}
}

// Minimum builds the document's pipeline and returns the lowest reachable
// value together with the coalesced final intervals.
func (a *Almanac) Minimum(ctx context.Context, doc almanac.Document, mode SeedMode) (Minimum, error) {
	pipeline, err := doc.Build()
	if err != nil {
		return Minimum{}, fmt.Errorf("build pipeline: %w", err)
	}

	var seeds []almanac.Interval
	switch mode {
	case SeedPoints:
		seeds, err = doc.Points()
	case SeedRanges:
		seeds, err = doc.SeedRanges()
	default:
		return Minimum{}, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}
	if err != nil {
		return Minimum{}, fmt.Errorf("seeds: %w", err)
	}

	start := time.Now()
	out, err := pipeline.RunContext(ctx, seeds, almanac.WithWorkers(a.workers), almanac.WithCoalesce())
	if err != nil {
		return Minimum{}, err
	}
	if len(out) == 0 {
		return Minimum{}, almanac.ErrEmptyInput
	}
	elapsed := time.Since(start)

	a.logger.Debug("pipeline finished",
		"stages", pipeline.Len(),
		"inputs", len(seeds),
		"outputs", len(out),
		"workers", a.workers,
		"took", elapsed,
	)
	return Minimum{Value: out[0].Start(), Intervals: out, Elapsed: elapsed}, nil
}
