package puzzle

import (
	"errors"
	"fmt"
	"slices"
)

// ErrNotImplemented indicates no solution is registered for a day.
var ErrNotImplemented = errors.New("day not implemented")

// Registry maps puzzle days to their solutions.
type Registry struct {
	solutions map[int]Solution
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{solutions: make(map[int]Solution)}
}

// Register adds s for day, replacing any existing entry.
func (r *Registry) Register(day int, s Solution) error {
	if err := ValidateDay(day); err != nil {
		return err
	}
	r.solutions[day] = s
	return nil
}

// Get returns the solution for day.
func (r *Registry) Get(day int) (Solution, error) {
	if err := ValidateDay(day); err != nil {
		return nil, err
	}
	s, ok := r.solutions[day]
	if !ok {
		return nil, fmt.Errorf("%w: day %d", ErrNotImplemented, day)
	}
	return s, nil
}

// Days returns the registered days in ascending order.
func (r *Registry) Days() []int {
	days := make([]int, 0, len(r.solutions))
	for d := range r.solutions {
		days = append(days, d)
	}
	slices.Sort(days)
	return days
}
