// SPDX-License-Identifier: MIT

package puzzle

import (
	"fmt"
	"slices"
)

const (
	firstDay = 1
	lastDay  = 25
)

// Registry maps day numbers to solvers. The zero value is not usable; call
// NewRegistry.
type Registry struct {
	solvers map[int]Solver
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{solvers: make(map[int]Solver)}
}

// Register adds s under day.
func (r *Registry) Register(day int, s Solver) error {
	if day < firstDay || day > lastDay {
		return fmt.Errorf("%w: %d", ErrInvalidDay, day)
	}
	if _, ok := r.solvers[day]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateDay, day)
	}
	r.solvers[day] = s

	return nil
}

// Lookup returns the solver for day.
func (r *Registry) Lookup(day int) (Solver, error) {
	s, ok := r.solvers[day]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}
	return s, nil
}

// Days lists registered days in ascending order.
func (r *Registry) Days() []int {
	days := make([]int, 0, len(r.solvers))
	for d := range r.solvers {
		days = append(days, d)
	}
	slices.Sort(days)

	return days
}
