// SPDX-License-Identifier: MIT

// Package day08 finds antinodes created by pairs of same-frequency antennas.
package day08

import (
	"io"
	"slices"

	"github.com/katalvlaran/aoc2024/grid"
)

// Field is the antenna map: its size and the antenna positions per frequency.
type Field struct {
	Width, Height int
	Antennas      map[rune][]grid.Coordinate
}

// Parse reads the map. Every character other than '.' is an antenna label.
func Parse(r io.Reader) (*Field, error) {
	f := &Field{Antennas: make(map[rune][]grid.Coordinate)}
	g, err := grid.Read(r, func(c grid.Coordinate, ch rune) (struct{}, error) {
		if ch != '.' {
			f.Antennas[ch] = append(f.Antennas[ch], c)
		}
		return struct{}{}, nil
	})
	if err != nil {
		return nil, err
	}
	f.Width, f.Height = g.Columns(), g.Rows()

	return f, nil
}

// Antinodes marks antinodes on a fresh grid the size of the field.
//
// Without harmonics each unordered pair (a, b) yields 2a-b and 2b-a.
// With harmonics every cell on the line through a and b, stepping by b-a
// from each antenna outwards, is marked until SetValue leaves the grid.
func (f *Field) Antinodes(harmonics bool) *grid.Grid[bool] {
	out := grid.New(f.Width, f.Height, false)
	for _, label := range f.labels() {
		nodes := f.Antennas[label]
		for i := 1; i < len(nodes); i++ {
			for j := 0; j < i; j++ {
				if harmonics {
					markRay(out, nodes[i], nodes[j])
				} else {
					out.SetValue(nodes[i].Scale(2).Sub(nodes[j]), true)
					out.SetValue(nodes[j].Scale(2).Sub(nodes[i]), true)
				}
			}
		}
	}

	return out
}

func markRay(out *grid.Grid[bool], a, b grid.Coordinate) {
	step := a.Sub(b)
	if step == (grid.Coordinate{}) {
		// Co-located antennas have no direction to cast along.
		out.SetValue(a, true)
		return
	}
	for c := a; out.SetValue(c, true); c.AddAssign(step) {
	}
	for c := b; out.SetValue(c, true); c.SubAssign(step) {
	}
}

// labels returns the frequencies in a stable order.
func (f *Field) labels() []rune {
	out := make([]rune, 0, len(f.Antennas))
	for l := range f.Antennas {
		out = append(out, l)
	}
	slices.Sort(out)
	return out
}

// Solver implements puzzle.Solver and puzzle.Visualizer.
type Solver struct{}

func (Solver) Part1(r io.Reader) (int, error) { return Part1(r) }
func (Solver) Part2(r io.Reader) (int, error) { return Part2(r) }

// Part1 counts distinct in-bounds antinode cells.
func Part1(r io.Reader) (int, error) { return count(r, false) }

// Part2 counts distinct antinode cells with resonant harmonics.
func Part2(r io.Reader) (int, error) { return count(r, true) }

func count(r io.Reader, harmonics bool) (int, error) {
	f, err := Parse(r)
	if err != nil {
		return 0, err
	}
	return f.Antinodes(harmonics).Count(func(b bool) bool { return b }), nil
}

// Visualize renders the harmonic antinode field as # and . rows.
func (Solver) Visualize(r io.Reader, w io.Writer) error {
	f, err := Parse(r)
	if err != nil {
		return err
	}
	return grid.RenderBool(w, f.Antinodes(true))
}
