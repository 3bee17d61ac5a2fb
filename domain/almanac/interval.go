// Package almanac provides the interval remapping pipeline: ordered stages of
// offset rules applied to sets of half-open integer ranges.
package almanac

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// Interval is the half-open range [start, start+length). Immutable value
// object; length is always at least one.
type Interval struct {
	start  uint64
	length uint64
}

// NewInterval creates an Interval, rejecting a zero length or an end that
// does not fit in uint64.
func NewInterval(start, length uint64) (Interval, error) {
	if length == 0 {
		return Interval{}, fmt.Errorf("%w: zero length at %d", ErrInvalidInterval, start)
	}
	if length > math.MaxUint64-start {
		return Interval{}, fmt.Errorf("%w: %d+%d overflows", ErrInvalidInterval, start, length)
	}
	return Interval{start: start, length: length}, nil
}

// Point creates the length-one interval holding v.
func Point(v uint64) (Interval, error) {
	return NewInterval(v, 1)
}

// span builds [start, end). Callers guarantee start < end.
func span(start, end uint64) Interval {
	return Interval{start: start, length: end - start}
}

// Start returns the first value in the interval.
func (iv Interval) Start() uint64 { return iv.start }

// Length returns the number of values in the interval.
func (iv Interval) Length() uint64 { return iv.length }

// End returns the exclusive upper bound.
func (iv Interval) End() uint64 { return iv.start + iv.length }

// Last returns the last value in the interval.
func (iv Interval) Last() uint64 { return iv.start + iv.length - 1 }

// IsZero reports whether iv is the zero value, which holds no values.
func (iv Interval) IsZero() bool { return iv.length == 0 }

// Contains reports whether v lies inside the interval.
func (iv Interval) Contains(v uint64) bool {
	return iv.start <= v && v < iv.End()
}

// Shift moves the interval by delta, keeping its length. It fails when the
// result would fall below zero or past the top of uint64.
func (iv Interval) Shift(delta int64) (Interval, error) {
	if delta < 0 {
		d := uint64(-(delta + 1)) + 1
		if d > iv.start {
			return Interval{}, fmt.Errorf("%w: %s shifted by %d underflows", ErrInvalidInterval, iv, delta)
		}
		return NewInterval(iv.start-d, iv.length)
	}
	d := uint64(delta)
	if d > math.MaxUint64-iv.start {
		return Interval{}, fmt.Errorf("%w: %s shifted by %d overflows", ErrInvalidInterval, iv, delta)
	}
	return NewInterval(iv.start+d, iv.length)
}

// Overlaps reports whether iv and other share at least one value.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.start < other.End() && other.start < iv.End()
}

// Clip splits iv against domain into the part strictly before domain, the
// part inside it and the part strictly after it. Empty pieces are nil.
func (iv Interval) Clip(domain Interval) (before, overlap, after *Interval) {
	end, dEnd := iv.End(), domain.End()

	if iv.start < domain.start {
		b := span(iv.start, min(end, domain.start))
		before = &b
	}

	lo, hi := max(iv.start, domain.start), min(end, dEnd)
	if lo < hi {
		o := span(lo, hi)
		overlap = &o
	}

	if end > dEnd {
		a := span(max(iv.start, dEnd), end)
		after = &a
	}

	return before, overlap, after
}

// String renders the interval as [start,end).
func (iv Interval) String() string {
	return fmt.Sprintf("[%d,%d)", iv.start, iv.End())
}

// Compare orders intervals by start, then by length.
func Compare(a, b Interval) int {
	if c := cmp.Compare(a.start, b.start); c != 0 {
		return c
	}
	return cmp.Compare(a.length, b.length)
}

// SortIntervals sorts ivs in place using Compare.
func SortIntervals(ivs []Interval) {
	slices.SortFunc(ivs, Compare)
}

// Coalesce returns a sorted copy of ivs with overlapping and adjacent
// intervals merged. The set of covered values is unchanged.
func Coalesce(ivs []Interval) []Interval {
	if len(ivs) == 0 {
		return nil
	}
	sorted := slices.Clone(ivs)
	SortIntervals(sorted)

	out := sorted[:1]
	for _, iv := range sorted[1:] {
		last := &out[len(out)-1]
		if iv.start <= last.End() {
			if end := iv.End(); end > last.End() {
				last.length = end - last.start
			}
			continue
		}
		out = append(out, iv)
	}
	return out
}

// Points converts scalar values into length-one intervals.
func Points(values ...uint64) ([]Interval, error) {
	out := make([]Interval, 0, len(values))
	for _, v := range values {
		iv, err := Point(v)
		if err != nil {
			return nil, err
		}
		out = append(out, iv)
	}
	return out, nil
}

// Ranges converts a flat list of start/length pairs into intervals.
func Ranges(pairs ...uint64) ([]Interval, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("%w: odd number of range values (%d)", ErrInvalidInterval, len(pairs))
	}
	out := make([]Interval, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		iv, err := NewInterval(pairs[i], pairs[i+1])
		if err != nil {
			return nil, err
		}
		out = append(out, iv)
	}
	return out, nil
}
