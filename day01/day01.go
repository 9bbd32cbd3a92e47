// SPDX-License-Identifier: MIT

// Package day01 compares two columns of location IDs.
package day01

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/katalvlaran/aoc2024/input"
)

// ErrBadRow indicates a line without exactly two numbers.
var ErrBadRow = errors.New("day01: each line must hold two numbers")

// Solver implements puzzle.Solver.
type Solver struct{}

func (Solver) Part1(r io.Reader) (int, error) { return Part1(r) }
func (Solver) Part2(r io.Reader) (int, error) { return Part2(r) }

func readLists(r io.Reader) (left, right []int, err error) {
	lines, err := input.Lines(r)
	if err != nil {
		return nil, nil, err
	}
	for i, line := range lines {
		if line == "" {
			continue
		}
		vals, err := input.Ints(line)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if len(vals) != 2 {
			return nil, nil, fmt.Errorf("line %d: %w", i+1, ErrBadRow)
		}
		left = append(left, vals[0])
		right = append(right, vals[1])
	}

	return left, right, nil
}

// Part1 pairs the sorted columns and sums the distances within each pair.
func Part1(r io.Reader) (int, error) {
	left, right, err := readLists(r)
	if err != nil {
		return 0, err
	}
	slices.Sort(left)
	slices.Sort(right)

	total := 0
	for i := range left {
		total += input.Abs(left[i] - right[i])
	}

	return total, nil
}

// Part2 sums each left value times the number of times it appears on the right.
func Part2(r io.Reader) (int, error) {
	left, right, err := readLists(r)
	if err != nil {
		return 0, err
	}
	occurrences := make(map[int]int, len(right))
	for _, v := range right {
		occurrences[v]++
	}

	total := 0
	for _, v := range left {
		total += v * occurrences[v]
	}

	return total, nil
}
