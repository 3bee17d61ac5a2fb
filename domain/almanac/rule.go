package almanac

import (
	"fmt"
	"math"
)

// MappingRule translates every value in [source, source+length) by the
// constant offset dest-source.
type MappingRule struct {
	source uint64
	dest   uint64
	length uint64
}

// NewMappingRule creates a MappingRule. Arguments follow the textual
// "dest source length" order of an almanac line.
func NewMappingRule(dest, source, length uint64) (MappingRule, error) {
	if length == 0 {
		return MappingRule{}, fmt.Errorf("%w: zero length (dest=%d source=%d)", ErrInvalidRule, dest, source)
	}
	if length > math.MaxUint64-source {
		return MappingRule{}, fmt.Errorf("%w: source %d+%d overflows", ErrInvalidRule, source, length)
	}
	if length > math.MaxUint64-dest {
		return MappingRule{}, fmt.Errorf("%w: dest %d+%d overflows", ErrInvalidRule, dest, length)
	}
	return MappingRule{source: source, dest: dest, length: length}, nil
}

// Source returns the first value of the rule's domain.
func (r MappingRule) Source() uint64 { return r.source }

// Dest returns the value Source maps to.
func (r MappingRule) Dest() uint64 { return r.dest }

// Length returns the size of the rule's domain.
func (r MappingRule) Length() uint64 { return r.length }

// Domain returns the half-open source range the rule applies to.
func (r MappingRule) Domain() Interval {
	return Interval{start: r.source, length: r.length}
}

// Covers reports whether v lies in the rule's domain.
func (r MappingRule) Covers(v uint64) bool {
	return r.Domain().Contains(v)
}

// Translate maps v through the rule. v must be covered by the rule.
func (r MappingRule) Translate(v uint64) uint64 {
	return r.dest + (v - r.source)
}

// TranslateInterval shifts iv by the rule's offset. iv must lie inside the
// rule's domain.
func (r MappingRule) TranslateInterval(iv Interval) Interval {
	return Interval{start: r.Translate(iv.start), length: iv.length}
}

func (r MappingRule) String() string {
	return fmt.Sprintf("%d %d %d", r.dest, r.source, r.length)
}

func (r MappingRule) sourceEnd() uint64 { return r.source + r.length }

// restrict returns the rule limited to [start, end), which must lie inside
// the rule's domain.
func (r MappingRule) restrict(start, end uint64) MappingRule {
	return MappingRule{
		source: start,
		dest:   r.Translate(start),
		length: end - start,
	}
}
