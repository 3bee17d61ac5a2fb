package almanac

import (
	"slices"
	"sort"
	"strings"
)

// Stage is one category-to-category transform: an ordered list of mapping
// rules where uncovered values map to themselves. Immutable once built.
type Stage struct {
	name  string
	rules []MappingRule
	// resolved holds pairwise disjoint rules sorted by source. Where declared
	// domains overlap, the earliest declared rule keeps the overlap.
	resolved []MappingRule
}

// NewStage creates a Stage from rules in declared order. name is an opaque
// diagnostic label and does not affect mapping.
func NewStage(name string, rules ...MappingRule) Stage {
	declared := slices.Clone(rules)
	return Stage{
		name:     name,
		rules:    declared,
		resolved: resolveRules(declared),
	}
}

// Name returns the stage label, e.g. "seed-to-soil".
func (s Stage) Name() string { return s.name }

// Rules returns the rules in declared order.
func (s Stage) Rules() []MappingRule { return slices.Clone(s.rules) }

// Source returns the category the stage maps from, parsed from a
// "source-to-dest" label. Empty if the label has no such form.
func (s Stage) Source() string {
	src, _, ok := strings.Cut(s.name, "-to-")
	if !ok {
		return ""
	}
	return src
}

// Destination returns the category the stage maps to.
func (s Stage) Destination() string {
	_, dst, ok := strings.Cut(s.name, "-to-")
	if !ok {
		return ""
	}
	return dst
}

// MapPoint maps a single value using a first-match scan of the declared rules.
func (s Stage) MapPoint(v uint64) uint64 {
	for _, r := range s.rules {
		if r.Covers(v) {
			return r.Translate(v)
		}
	}
	return v
}

// Map maps every input interval through the stage. Each input is split at
// rule boundaries: covered pieces are translated, uncovered pieces pass
// through unchanged. The result is not coalesced.
func (s Stage) Map(inputs []Interval) []Interval {
	out := make([]Interval, 0, len(inputs))
	for _, iv := range inputs {
		out = s.mapInterval(out, iv)
	}
	return out
}

func (s Stage) mapInterval(out []Interval, iv Interval) []Interval {
	if iv.IsZero() {
		return out
	}

	// Rules ending at or before the start cannot overlap.
	i := sort.Search(len(s.resolved), func(i int) bool {
		return s.resolved[i].sourceEnd() > iv.start
	})

	rest := &iv
	for ; i < len(s.resolved) && rest != nil; i++ {
		r := s.resolved[i]
		if r.source >= rest.End() {
			break
		}
		before, overlap, after := rest.Clip(r.Domain())
		if before != nil {
			out = append(out, *before)
		}
		if overlap != nil {
			out = append(out, r.TranslateInterval(*overlap))
		}
		rest = after
	}

	if rest != nil {
		out = append(out, *rest)
	}
	return out
}

// resolveRules turns declared rules into disjoint, source-sorted rules with
// first-match-wins semantics for overlapping domains.
func resolveRules(rules []MappingRule) []MappingRule {
	var (
		covered  []Interval
		resolved []MappingRule
	)
	for _, r := range rules {
		if r.length == 0 {
			continue
		}
		for _, gap := range uncovered(covered, r.source, r.sourceEnd()) {
			resolved = append(resolved, r.restrict(gap.start, gap.End()))
		}
		covered = Coalesce(append(covered, r.Domain()))
	}
	slices.SortFunc(resolved, func(a, b MappingRule) int {
		return Compare(a.Domain(), b.Domain())
	})
	return resolved
}

// uncovered returns the pieces of [start, end) not covered by covered, which
// must be sorted and disjoint.
func uncovered(covered []Interval, start, end uint64) []Interval {
	var gaps []Interval
	cursor := start
	for _, c := range covered {
		if c.End() <= cursor {
			continue
		}
		if c.start >= end {
			break
		}
		if c.start > cursor {
			gaps = append(gaps, span(cursor, c.start))
		}
		cursor = c.End()
		if cursor >= end {
			return gaps
		}
	}
	if cursor < end {
		gaps = append(gaps, span(cursor, end))
	}
	return gaps
}
