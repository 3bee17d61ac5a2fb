package solution

import (
	"testing"

	"github.com/helixml/almanac/domain/almanac"
	"github.com/helixml/almanac/domain/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDay05_PartA(t *testing.T) {
	got, err := Day05{}.PartA(sampleInput)
	require.NoError(t, err)
	assert.Equal(t, puzzle.NumberAnswer(35), got)
}

func TestDay05_PartB(t *testing.T) {
	got, err := Day05{}.PartB(sampleInput)
	require.NoError(t, err)
	assert.Equal(t, puzzle.NumberAnswer(46), got)
}

func TestDay05_InvalidRule(t *testing.T) {
	_, err := Day05{}.PartA("seeds: 1\n\nseed-to-soil map:\n0 10 0\n")
	assert.ErrorIs(t, err, almanac.ErrInvalidRule)
}

func TestDay05_OddSeedRanges(t *testing.T) {
	_, err := Day05{}.PartB("seeds: 1 2 3\n")
	assert.ErrorIs(t, err, almanac.ErrInvalidInterval)
}

func TestDay05_NoSeeds(t *testing.T) {
	_, err := Day05{}.PartA("seeds:\n")
	assert.ErrorIs(t, err, almanac.ErrEmptyInput)
}

func TestRegistry(t *testing.T) {
	r := Registry()
	assert.Equal(t, []int{5}, r.Days())

	s, err := r.Get(5)
	require.NoError(t, err)
	assert.Equal(t, "If You Give A Seed A Fertilizer", s.Name())

	_, err = r.Get(1)
	assert.ErrorIs(t, err, puzzle.ErrNotImplemented)
}
