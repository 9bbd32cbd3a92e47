// SPDX-License-Identifier: MIT

// Package day07 checks calibration equations "target: a b c ..." where
// operators are evaluated strictly left to right.
package day07

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2024/input"
)

// ErrBadEquation indicates a line not of the form "target: n n ...".
var ErrBadEquation = errors.New("day07: equation must be target: operands")

// Equation is one calibration line.
type Equation struct {
	Target   int64
	Operands []int64
}

// ParseEquation parses "target: a b c".
func ParseEquation(line string) (Equation, error) {
	lhs, rhs, ok := strings.Cut(line, ":")
	if !ok {
		return Equation{}, fmt.Errorf("%w: %q", ErrBadEquation, line)
	}
	target, err := strconv.ParseInt(strings.TrimSpace(lhs), 10, 64)
	if err != nil {
		return Equation{}, fmt.Errorf("%w: %q", ErrBadEquation, line)
	}
	vals, err := input.Ints(rhs)
	if err != nil {
		return Equation{}, err
	}
	if len(vals) == 0 {
		return Equation{}, fmt.Errorf("%w: %q", ErrBadEquation, line)
	}
	eq := Equation{Target: target, Operands: make([]int64, len(vals))}
	for i, v := range vals {
		eq.Operands[i] = int64(v)
	}

	return eq, nil
}

// Solvable reports whether some choice of + and * (and || when concat is
// set) between the operands yields Target.
func (e Equation) Solvable(concat bool) bool {
	return search(e.Target, e.Operands[0], e.Operands[1:], concat)
}

func search(target, acc int64, rest []int64, concat bool) bool {
	if len(rest) == 0 {
		return acc == target
	}
	// No operator decreases a positive running value.
	if acc > target {
		return false
	}
	next, tail := rest[0], rest[1:]
	// A branch whose value leaves int64 is dropped rather than wrapped.
	if concat {
		if v, ok := concatenate(acc, next); ok && search(target, v, tail, concat) {
			return true
		}
	}
	if v, ok := add(acc, next); ok && search(target, v, tail, concat) {
		return true
	}
	v, ok := mul(acc, next)
	return ok && search(target, v, tail, concat)
}

func add(a, b int64) (int64, bool) {
	s := a + b
	return s, (b >= 0) == (s >= a)
}

func mul(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	p := a * b
	return p, p/b == a
}

// concatenate joins the decimal digits of a and b: 12 || 345 = 12345.
// It reports false for a negative b or a result outside int64.
func concatenate(a, b int64) (int64, bool) {
	if b < 0 {
		return 0, false
	}
	shift := int64(10)
	for shift <= b {
		var ok bool
		if shift, ok = mul(shift, 10); !ok {
			return 0, false
		}
	}
	v, ok := mul(a, shift)
	if !ok {
		return 0, false
	}
	return add(v, b)
}

// Solver implements puzzle.Solver.
type Solver struct{}

func (Solver) Part1(r io.Reader) (int, error) { return Part1(r) }
func (Solver) Part2(r io.Reader) (int, error) { return Part2(r) }

// Part1 sums the targets reachable with + and *.
func Part1(r io.Reader) (int, error) { return calibrate(r, false) }

// Part2 sums the targets reachable with +, * and ||.
func Part2(r io.Reader) (int, error) { return calibrate(r, true) }

func calibrate(r io.Reader, concat bool) (int, error) {
	lines, err := input.Lines(r)
	if err != nil {
		return 0, err
	}
	var total int64
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		eq, err := ParseEquation(line)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		if eq.Solvable(concat) {
			total += eq.Target
		}
	}

	return int(total), nil
}
