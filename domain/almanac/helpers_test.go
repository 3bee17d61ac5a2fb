package almanac

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// sampleDocument is the worked example from the puzzle statement.
func sampleDocument() Document {
	return Document{
		Seeds: []uint64{79, 14, 55, 13},
		Stages: []StageSpec{
			{Name: "seed-to-soil", Rules: []RuleSpec{{50, 98, 2}, {52, 50, 48}}},
			{Name: "soil-to-fertilizer", Rules: []RuleSpec{{0, 15, 37}, {37, 52, 2}, {39, 0, 15}}},
			{Name: "fertilizer-to-water", Rules: []RuleSpec{{49, 53, 8}, {0, 11, 42}, {42, 0, 7}, {57, 7, 4}}},
			{Name: "water-to-light", Rules: []RuleSpec{{88, 18, 7}, {18, 25, 70}}},
			{Name: "light-to-temperature", Rules: []RuleSpec{{45, 77, 23}, {81, 45, 19}, {68, 64, 13}}},
			{Name: "temperature-to-humidity", Rules: []RuleSpec{{0, 69, 1}, {1, 0, 69}}},
			{Name: "humidity-to-location", Rules: []RuleSpec{{60, 56, 37}, {56, 93, 4}}},
		},
	}
}

func samplePipeline(t *testing.T) Pipeline {
	t.Helper()
	p, err := sampleDocument().Build()
	require.NoError(t, err)
	return p
}

func mustInterval(t *testing.T, start, length uint64) Interval {
	t.Helper()
	iv, err := NewInterval(start, length)
	require.NoError(t, err)
	return iv
}

func mustRule(t *testing.T, dest, source, length uint64) MappingRule {
	t.Helper()
	r, err := NewMappingRule(dest, source, length)
	require.NoError(t, err)
	return r
}

// expand lists every value covered by ivs, keeping duplicates.
func expand(ivs []Interval) []uint64 {
	var out []uint64
	for _, iv := range ivs {
		for v := iv.Start(); v < iv.End(); v++ {
			out = append(out, v)
		}
	}
	return out
}
