package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/helixml/almanac/domain/puzzle"
)

// InputLoader loads the raw input for a puzzle day.
type InputLoader interface {
	Load(ctx context.Context, day int) (string, error)
}

// Result is the outcome of running one part of one day.
type Result struct {
	Day     int
	Part    puzzle.Part
	Name    string
	Answer  puzzle.Answer
	Elapsed time.Duration
}

// Runner resolves solutions, loads their input and times them.
type Runner struct {
	registry *puzzle.Registry
	loader   InputLoader
	logger   *slog.Logger
	now      func() time.Time
}

// NewRunner creates a Runner. loader may be nil when only RunInput is used.
func NewRunner(registry *puzzle.Registry, loader InputLoader, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{registry: registry, loader: loader, logger: logger, now: time.Now}
}

// Solutions returns the registered days and their puzzle names.
func (r *Runner) Solutions() []SolutionInfo {
	days := r.registry.Days()
	out := make([]SolutionInfo, 0, len(days))
	for _, d := range days {
		s, err := r.registry.Get(d)
		if err != nil {
			continue
		}
		out = append(out, SolutionInfo{Day: d, Name: s.Name()})
	}
	return out
}

// SolutionInfo describes a registered solution.
type SolutionInfo struct {
	Day  int
	Name string
}

// Run loads the day's input and solves the requested part.
func (r *Runner) Run(ctx context.Context, day int, part puzzle.Part) (Result, error) {
	s, err := r.registry.Get(day)
	if err != nil {
		return Result{}, err
	}
	input, err := r.Load(ctx, day)
	if err != nil {
		return Result{}, err
	}
	return r.solve(ctx, day, part, s, input)
}

// Load returns the input for day through the configured loader.
func (r *Runner) Load(ctx context.Context, day int) (string, error) {
	if r.loader == nil {
		return "", fmt.Errorf("load input for day %d: %w", day, ErrNoInputLoader)
	}
	input, err := r.loader.Load(ctx, day)
	if err != nil {
		return "", fmt.Errorf("load input for day %d: %w", day, err)
	}
	return input, nil
}

// RunInput solves the requested part against the given input.
func (r *Runner) RunInput(ctx context.Context, day int, part puzzle.Part, input string) (Result, error) {
	s, err := r.registry.Get(day)
	if err != nil {
		return Result{}, err
	}
	return r.solve(ctx, day, part, s, input)
}

func (r *Runner) solve(ctx context.Context, day int, part puzzle.Part, s puzzle.Solution, input string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	log := r.logger.With("day", day, "part", part.Upper())
	log.Info("running", "name", s.Name())

	start := r.now()
	answer, err := puzzle.Solve(s, part, input)
	elapsed := r.now().Sub(start)
	if err != nil {
		log.Error("solution failed", "error", err, "took", elapsed)
		return Result{}, fmt.Errorf("day %d part %s: %w", day, part.Upper(), err)
	}

	log.Info("solved", "answer", answer.String(), "took", puzzle.FormatDuration(elapsed))
	return Result{Day: day, Part: part, Name: s.Name(), Answer: answer, Elapsed: elapsed}, nil
}
