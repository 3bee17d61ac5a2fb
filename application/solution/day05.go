package solution

import (
	"fmt"

	"github.com/helixml/almanac/domain/almanac"
	"github.com/helixml/almanac/domain/puzzle"
)

// Day05 finds the lowest location reachable from the almanac's seeds.
type Day05 struct{}

// Name returns the puzzle title.
func (Day05) Name() string { return "If You Give A Seed A Fertilizer" }

// PartA treats every seed as a single value.
func (d Day05) PartA(input string) (puzzle.Answer, error) {
	return d.solve(input, almanac.Document.Points)
}

// PartB treats the seeds as start/length pairs.
func (d Day05) PartB(input string) (puzzle.Answer, error) {
	return d.solve(input, almanac.Document.SeedRanges)
}

func (Day05) solve(input string, seeds func(almanac.Document) ([]almanac.Interval, error)) (puzzle.Answer, error) {
	doc, err := ParseAlmanac(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	pipeline, err := doc.Build()
	if err != nil {
		return puzzle.Answer{}, fmt.Errorf("build pipeline: %w", err)
	}
	inputs, err := seeds(doc)
	if err != nil {
		return puzzle.Answer{}, fmt.Errorf("seeds: %w", err)
	}
	minimum, err := almanac.MinimumReachable(inputs, pipeline)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.NumberAnswer(minimum), nil
}
