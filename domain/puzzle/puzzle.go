// Package puzzle provides the contract shared by every daily solution.
package puzzle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidDay indicates a day outside 1..25.
var ErrInvalidDay = errors.New("invalid day")

// ErrInvalidPart indicates a part other than A or B.
var ErrInvalidPart = errors.New("invalid part")

// MaxDay is the last puzzle day of an event.
const MaxDay = 25

// Solution solves both parts of one day's puzzle.
type Solution interface {
	Name() string
	PartA(input string) (Answer, error)
	PartB(input string) (Answer, error)
}

// Part identifies which half of a puzzle to solve.
type Part string

// Part values.
const (
	PartA Part = "a"
	PartB Part = "b"
)

// ParsePart reads a part from its first letter, case-insensitively.
func ParsePart(s string) (Part, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidPart)
	}
	switch strings.ToLower(s[:1]) {
	case "a":
		return PartA, nil
	case "b":
		return PartB, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPart, s)
	}
}

// Upper returns the part letter in upper case.
func (p Part) Upper() string { return strings.ToUpper(string(p)) }

// ParseDay reads a day number in 1..MaxDay.
func ParseDay(s string) (int, error) {
	day, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidDay, s)
	}
	if err := ValidateDay(day); err != nil {
		return 0, err
	}
	return day, nil
}

// ValidateDay checks that day lies in 1..MaxDay.
func ValidateDay(day int) error {
	if day < 1 || day > MaxDay {
		return fmt.Errorf("%w: %d", ErrInvalidDay, day)
	}
	return nil
}

// Solve dispatches to the requested part of s.
func Solve(s Solution, part Part, input string) (Answer, error) {
	switch part {
	case PartA:
		return s.PartA(input)
	case PartB:
		return s.PartB(input)
	default:
		return Answer{}, fmt.Errorf("%w: %q", ErrInvalidPart, string(part))
	}
}
