package almanac

import "fmt"

// RuleSpec is one "dest source length" line before validation.
type RuleSpec struct {
	Dest   uint64
	Source uint64
	Length uint64
}

// StageSpec is a named, ordered list of rule lines.
type StageSpec struct {
	Name  string
	Rules []RuleSpec
}

// Document is the structured form of an almanac: the initial values and the
// stages in declaration order.
type Document struct {
	Seeds  []uint64
	Stages []StageSpec
}

// Build validates every rule and assembles the pipeline.
func (d Document) Build() (Pipeline, error) {
	stages := make([]Stage, 0, len(d.Stages))
	for i, spec := range d.Stages {
		rules := make([]MappingRule, 0, len(spec.Rules))
		for j, rs := range spec.Rules {
			r, err := NewMappingRule(rs.Dest, rs.Source, rs.Length)
			if err != nil {
				return Pipeline{}, fmt.Errorf("stage %d (%s) rule %d: %w", i, spec.Name, j, err)
			}
			rules = append(rules, r)
		}
		stages = append(stages, NewStage(spec.Name, rules...))
	}
	return NewPipeline(stages...), nil
}

// Points returns every seed as a length-one interval.
func (d Document) Points() ([]Interval, error) {
	return Points(d.Seeds...)
}

// SeedRanges reads the seeds as consecutive start/length pairs.
func (d Document) SeedRanges() ([]Interval, error) {
	return Ranges(d.Seeds...)
}
