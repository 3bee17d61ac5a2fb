package puzzle

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSolution struct{}

func (stubSolution) Name() string                       { return "Stub" }
func (stubSolution) PartA(input string) (Answer, error) { return TextAnswer("a:" + input), nil }
func (stubSolution) PartB(string) (Answer, error)       { return Answer{}, errors.New("boom") }

func TestParsePart(t *testing.T) {
	for _, s := range []string{"a", "A", "apple", " a "} {
		p, err := ParsePart(s)
		require.NoError(t, err, s)
		assert.Equal(t, PartA, p)
	}
	p, err := ParsePart("B")
	require.NoError(t, err)
	assert.Equal(t, PartB, p)
	assert.Equal(t, "B", p.Upper())

	for _, s := range []string{"", "c", "1"} {
		_, err := ParsePart(s)
		assert.ErrorIs(t, err, ErrInvalidPart, s)
	}
}

func TestParseDay(t *testing.T) {
	day, err := ParseDay("5")
	require.NoError(t, err)
	assert.Equal(t, 5, day)

	for _, s := range []string{"0", "26", "five", ""} {
		_, err := ParseDay(s)
		assert.ErrorIs(t, err, ErrInvalidDay, s)
	}
}

func TestSolve(t *testing.T) {
	got, err := Solve(stubSolution{}, PartA, "x")
	require.NoError(t, err)
	assert.Equal(t, "a:x", got.String())

	_, err = Solve(stubSolution{}, PartB, "x")
	assert.EqualError(t, err, "boom")

	_, err = Solve(stubSolution{}, Part("c"), "x")
	assert.ErrorIs(t, err, ErrInvalidPart)
}

func TestAnswer(t *testing.T) {
	n := NumberAnswer(35)
	assert.True(t, n.IsNumber())
	assert.Equal(t, uint64(35), n.Number())
	assert.Equal(t, "35", n.String())

	s := TextAnswer("abc")
	assert.False(t, s.IsNumber())
	assert.Equal(t, "abc", s.String())
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(5, stubSolution{}))
	require.NoError(t, r.Register(1, stubSolution{}))
	assert.ErrorIs(t, r.Register(30, stubSolution{}), ErrInvalidDay)

	s, err := r.Get(5)
	require.NoError(t, err)
	assert.Equal(t, "Stub", s.Name())

	_, err = r.Get(6)
	assert.ErrorIs(t, err, ErrNotImplemented)

	_, err = r.Get(0)
	assert.ErrorIs(t, err, ErrInvalidDay)

	assert.Equal(t, []int{1, 5}, r.Days())
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0ns"},
		{999 * time.Nanosecond, "999ns"},
		{1500 * time.Nanosecond, "1μs"},
		{1_500_000 * time.Nanosecond, "1ms"},
		{93 * time.Second, "93s"},
		{5000 * time.Second, "5000s"},
		{-time.Second, "0ns"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.in), tt.in.String())
	}
}
