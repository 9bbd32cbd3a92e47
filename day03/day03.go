// SPDX-License-Identifier: MIT

// Package day03 scans corrupted memory for mul(a,b) instructions.
package day03

import (
	"io"
	"regexp"
	"strconv"

	"github.com/katalvlaran/aoc2024/input"
)

var instruction = regexp.MustCompile(`mul\((\d+),(\d+)\)|do\(\)|don't\(\)`)

// Solver implements puzzle.Solver.
type Solver struct{}

func (Solver) Part1(r io.Reader) (int, error) { return Part1(r) }
func (Solver) Part2(r io.Reader) (int, error) { return Part2(r) }

// Part1 sums the products of every well-formed mul instruction.
func Part1(r io.Reader) (int, error) { return run(r, false) }

// Part2 honors do() and don't(). The enabled state carries across lines.
func Part2(r io.Reader) (int, error) { return run(r, true) }

func run(r io.Reader, conditionals bool) (int, error) {
	lines, err := input.Lines(r)
	if err != nil {
		return 0, err
	}
	total := 0
	enabled := true
	for _, line := range lines {
		for _, m := range instruction.FindAllStringSubmatch(line, -1) {
			switch m[0] {
			case "do()":
				if conditionals {
					enabled = true
				}
			case "don't()":
				if conditionals {
					enabled = false
				}
			default:
				if !enabled {
					continue
				}
				a, errA := strconv.Atoi(m[1])
				b, errB := strconv.Atoi(m[2])
				if errA != nil || errB != nil {
					// Digit runs too long for int are not valid operands.
					continue
				}
				total += a * b
			}
		}
	}

	return total, nil
}
