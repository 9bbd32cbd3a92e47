// SPDX-License-Identifier: MIT

package puzzle

import (
	"fmt"
	"io"
)

// Solver computes the two answers of one day from its input.
type Solver interface {
	Part1(r io.Reader) (int, error)
	Part2(r io.Reader) (int, error)
}

// Visualizer is implemented by solvers that can draw their final grid state.
type Visualizer interface {
	Visualize(r io.Reader, w io.Writer) error
}

// Part selects one of a day's two answers.
type Part int

const (
	PartOne Part = 1
	PartTwo Part = 2
)

// ParsePart maps 1 and 2 to a Part. Anything else is ErrInvalidPart.
func ParsePart(n int) (Part, error) {
	switch Part(n) {
	case PartOne, PartTwo:
		return Part(n), nil
	}
	return 0, fmt.Errorf("%w: %d", ErrInvalidPart, n)
}

func (p Part) String() string {
	switch p {
	case PartOne:
		return "one"
	case PartTwo:
		return "two"
	}
	return fmt.Sprintf("Part(%d)", int(p))
}

func (p Part) solve(s Solver, r io.Reader) (int, error) {
	if p == PartTwo {
		return s.Part2(r)
	}
	return s.Part1(r)
}
