// SPDX-License-Identifier: MIT

// Package day04 is a word search over a letter grid.
package day04

import (
	"io"

	"github.com/katalvlaran/aoc2024/grid"
)

const word = "XMAS"

// Solver implements puzzle.Solver.
type Solver struct{}

func (Solver) Part1(r io.Reader) (int, error) { return Part1(r) }
func (Solver) Part2(r io.Reader) (int, error) { return Part2(r) }

// Part1 counts occurrences of XMAS in all eight directions, overlaps included.
func Part1(r io.Reader) (int, error) {
	g, err := grid.Runes(r)
	if err != nil {
		return 0, err
	}
	offsets := grid.Conn8.Offsets()
	n := 0
	for i := 0; i < g.Cells(); i++ {
		start := g.Coordinate(i)
		if v, _ := g.Value(start); v != rune(word[0]) {
			continue
		}
		for _, d := range offsets {
			if spells(g, start, d) {
				n++
			}
		}
	}

	return n, nil
}

// spells checks the rest of word along d; start already holds word[0].
func spells(g *grid.Grid[rune], start, d grid.Coordinate) bool {
	for k := 1; k < len(word); k++ {
		v, ok := g.Value(start.Add(d.Scale(int64(k))))
		if !ok || v != rune(word[k]) {
			return false
		}
	}
	return true
}

// Part2 counts A cells that sit in the middle of two crossing MAS diagonals,
// each readable in either direction.
func Part2(r io.Reader) (int, error) {
	g, err := grid.Runes(r)
	if err != nil {
		return 0, err
	}
	n := 0
	for i := 0; i < g.Cells(); i++ {
		c := g.Coordinate(i)
		if v, _ := g.Value(c); v != 'A' {
			continue
		}
		if diagonalMAS(g, c, grid.Pt(-1, -1)) && diagonalMAS(g, c, grid.Pt(-1, 1)) {
			n++
		}
	}

	return n, nil
}

// diagonalMAS checks the corner at c+d against the opposite corner at c-d.
func diagonalMAS(g *grid.Grid[rune], c, d grid.Coordinate) bool {
	a, okA := g.Value(c.Add(d))
	b, okB := g.Value(c.Sub(d))
	if !okA || !okB {
		return false
	}
	return (a == 'M' && b == 'S') || (a == 'S' && b == 'M')
}
