package almanac

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"
)

// Pipeline is an ordered sequence of stages applied left to right.
type Pipeline struct {
	stages []Stage
}

// NewPipeline creates a Pipeline from stages in declaration order.
func NewPipeline(stages ...Stage) Pipeline {
	return Pipeline{stages: slices.Clone(stages)}
}

// Stages returns the stages in order.
func (p Pipeline) Stages() []Stage { return slices.Clone(p.stages) }

// Len returns the number of stages.
func (p Pipeline) Len() int { return len(p.stages) }

// Run folds Stage.Map over the stages. Every stage consumes the complete
// output of the previous one. Zero-value intervals are dropped.
func (p Pipeline) Run(inputs []Interval) []Interval {
	current := nonEmpty(inputs)
	for _, s := range p.stages {
		current = s.Map(current)
	}
	return current
}

// MapPoint maps a single value through every stage.
func (p Pipeline) MapPoint(v uint64) uint64 {
	for _, s := range p.stages {
		v = s.MapPoint(v)
	}
	return v
}

// RunOption configures RunContext.
type RunOption func(*runOptions)

type runOptions struct {
	workers  int
	coalesce bool
}

// WithWorkers maps the intervals of each stage across n goroutines.
// Values below two run sequentially.
func WithWorkers(n int) RunOption {
	return func(o *runOptions) { o.workers = n }
}

// WithCoalesce merges overlapping and adjacent intervals between stages,
// which keeps the working set small without changing the covered values.
func WithCoalesce() RunOption {
	return func(o *runOptions) { o.coalesce = true }
}

// RunContext is Run with optional intra-stage parallelism and coalescing.
// Stage i+1 starts only after stage i has produced its full output. Without
// WithCoalesce the result is identical to Run regardless of worker count.
func (p Pipeline) RunContext(ctx context.Context, inputs []Interval, opts ...RunOption) ([]Interval, error) {
	o := runOptions{workers: 1}
	for _, opt := range opts {
		opt(&o)
	}

	current := nonEmpty(inputs)
	for i, s := range p.stages {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("stage %d (%s): %w", i, s.name, err)
		}
		next, err := s.mapParallel(ctx, current, o.workers)
		if err != nil {
			return nil, fmt.Errorf("stage %d (%s): %w", i, s.name, err)
		}
		if o.coalesce {
			next = Coalesce(next)
		}
		current = next
	}
	if o.coalesce && len(p.stages) == 0 {
		current = Coalesce(current)
	}
	return current, nil
}

// mapParallel splits inputs into contiguous chunks, maps each chunk on its own
// goroutine and concatenates the results in chunk order.
func (s Stage) mapParallel(ctx context.Context, inputs []Interval, workers int) ([]Interval, error) {
	if workers < 2 || len(inputs) < 2 {
		return s.Map(inputs), nil
	}

	chunks := chunk(inputs, workers)
	results := make([][]Interval, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	for i, c := range chunks {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = s.Map(c)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return slices.Concat(results...), nil
}

// chunk splits ivs into at most n contiguous, nearly equal parts.
func chunk(ivs []Interval, n int) [][]Interval {
	n = min(n, len(ivs))
	size := (len(ivs) + n - 1) / n
	out := make([][]Interval, 0, n)
	for start := 0; start < len(ivs); start += size {
		out = append(out, ivs[start:min(start+size, len(ivs))])
	}
	return out
}

func nonEmpty(ivs []Interval) []Interval {
	return slices.DeleteFunc(slices.Clone(ivs), Interval.IsZero)
}
