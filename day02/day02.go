// SPDX-License-Identifier: MIT

// Package day02 counts safe reactor reports.
//
// A report is safe when its levels are strictly increasing or strictly
// decreasing and every step changes by 1, 2 or 3. With the dampener a report
// also counts as safe if removing a single level makes it safe.
package day02

import (
	"fmt"
	"io"

	"github.com/katalvlaran/aoc2024/input"
)

const (
	minStep = 1
	maxStep = 3
)

// Solver implements puzzle.Solver.
type Solver struct{}

func (Solver) Part1(r io.Reader) (int, error) { return countSafe(r, false) }
func (Solver) Part2(r io.Reader) (int, error) { return countSafe(r, true) }

// Part1 counts safe reports.
func Part1(r io.Reader) (int, error) { return countSafe(r, false) }

// Part2 counts reports that are safe with at most one level removed.
func Part2(r io.Reader) (int, error) { return countSafe(r, true) }

func countSafe(r io.Reader, dampen bool) (int, error) {
	lines, err := input.Lines(r)
	if err != nil {
		return 0, err
	}
	n := 0
	for i, line := range lines {
		if line == "" {
			continue
		}
		levels, err := input.Ints(line)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		if IsSafe(levels) || (dampen && isSafeDampened(levels)) {
			n++
		}
	}

	return n, nil
}

// IsSafe reports whether levels are strictly monotonic with steps in 1..3.
// Reports with fewer than two levels are safe.
func IsSafe(levels []int) bool {
	sign := 0
	for i := 1; i < len(levels); i++ {
		d := levels[i] - levels[i-1]
		if a := input.Abs(d); a < minStep || a > maxStep {
			return false
		}
		s := 1
		if d < 0 {
			s = -1
		}
		if sign != 0 && s != sign {
			return false
		}
		sign = s
	}

	return true
}

// isSafeDampened tries every single-level removal.
func isSafeDampened(levels []int) bool {
	reduced := make([]int, 0, len(levels))
	for skip := range levels {
		reduced = reduced[:0]
		reduced = append(reduced, levels[:skip]...)
		reduced = append(reduced, levels[skip+1:]...)
		if IsSafe(reduced) {
			return true
		}
	}

	return false
}
