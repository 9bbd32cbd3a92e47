// SPDX-License-Identifier: MIT

// Package day05 validates and repairs print-queue updates against
// "X|Y" page ordering rules (X must be printed before Y).
package day05

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2024/input"
)

var (
	// ErrBadRule indicates a rule line not of the form "X|Y".
	ErrBadRule = errors.New("day05: rule must be X|Y")
	// ErrNoMiddle indicates an update with an even number of pages.
	ErrNoMiddle = errors.New("day05: update has no middle page")
)

// Rules maps a page to the pages that must come after it.
type Rules map[int][]int

// before reports whether a rule requires a to be printed before b.
func (r Rules) before(a, b int) bool {
	return slices.Contains(r[a], b)
}

// Solver implements puzzle.Solver.
type Solver struct{}

func (Solver) Part1(r io.Reader) (int, error) { return Part1(r) }
func (Solver) Part2(r io.Reader) (int, error) { return Part2(r) }

// Parse reads the rule section, a blank line, then one update per line.
func Parse(r io.Reader) (Rules, [][]int, error) {
	lines, err := input.Lines(r)
	if err != nil {
		return nil, nil, err
	}
	rules := make(Rules)
	i := 0
	for ; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			break
		}
		a, b, err := parseRule(line)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w: %q", i+1, err, line)
		}
		rules[a] = append(rules[a], b)
	}

	var updates [][]int
	for i++; i < len(lines); i++ {
		pages, err := input.SplitInts(lines[i], ",")
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if len(pages) == 0 {
			continue
		}
		updates = append(updates, pages)
	}

	return rules, updates, nil
}

func parseRule(line string) (before, after int, err error) {
	lhs, rhs, ok := strings.Cut(line, "|")
	if !ok {
		return 0, 0, ErrBadRule
	}
	if before, err = strconv.Atoi(lhs); err != nil {
		return 0, 0, ErrBadRule
	}
	if after, err = strconv.Atoi(rhs); err != nil {
		return 0, 0, ErrBadRule
	}

	return before, after, nil
}

// Valid reports whether no page in update is preceded by a page it must come before.
func (r Rules) Valid(update []int) bool {
	for i, page := range update {
		for _, earlier := range update[:i] {
			if r.before(page, earlier) {
				return false
			}
		}
	}
	return true
}

// Reorder fixes update in place with repeated passes of adjacent swaps.
// The full rule set may contain cycles; only the pages of one update are
// guaranteed to admit an order, so no global topological sort is attempted.
func (r Rules) Reorder(update []int) {
	for pass := 0; pass < len(update); pass++ {
		for i := 1; i < len(update); i++ {
			if r.before(update[i], update[i-1]) {
				update[i-1], update[i] = update[i], update[i-1]
			}
		}
	}
}

func middle(update []int) (int, error) {
	if len(update)%2 == 0 {
		return 0, fmt.Errorf("%w: %v", ErrNoMiddle, update)
	}
	return update[len(update)/2], nil
}

// Part1 sums the middle pages of updates that are already in order.
func Part1(r io.Reader) (int, error) {
	rules, updates, err := Parse(r)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, u := range updates {
		if !rules.Valid(u) {
			continue
		}
		m, err := middle(u)
		if err != nil {
			return 0, err
		}
		total += m
	}

	return total, nil
}

// Part2 reorders the out-of-order updates and sums their middle pages.
func Part2(r io.Reader) (int, error) {
	rules, updates, err := Parse(r)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, u := range updates {
		if rules.Valid(u) {
			continue
		}
		rules.Reorder(u)
		m, err := middle(u)
		if err != nil {
			return 0, err
		}
		total += m
	}

	return total, nil
}
