// SPDX-License-Identifier: MIT

// Package day06 simulates a guard patrolling a lab floor.
//
// The guard steps forward while the cell ahead is open and turns right when
// it is blocked. The patrol ends when the next step would leave the map, or
// never ends if the guard repeats a (position, heading) state.
package day06

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/aoc2024/grid"
)

var (
	// ErrNoGuard indicates the map has no ^ > v < marker.
	ErrNoGuard = errors.New("day06: no guard on the map")
	// ErrManyGuards indicates more than one guard marker.
	ErrManyGuards = errors.New("day06: more than one guard on the map")
	// ErrBadCell indicates a character other than . # or a guard marker.
	ErrBadCell = errors.New("day06: unexpected map character")
)

// Lab is the parsed map: blocked cells plus the guard's starting state.
type Lab struct {
	Blocked *grid.Grid[bool]
	Start   grid.Coordinate
	Facing  grid.Direction
}

// Parse reads the lab map.
func Parse(r io.Reader) (*Lab, error) {
	lab := &Lab{}
	guards := 0
	g, err := grid.Read(r, func(c grid.Coordinate, ch rune) (bool, error) {
		switch ch {
		case '.':
			return false, nil
		case '#':
			return true, nil
		}
		d, ok := grid.ParseDirection(ch)
		if !ok {
			return false, fmt.Errorf("%w: %q", ErrBadCell, ch)
		}
		guards++
		lab.Start, lab.Facing = c, d
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	switch {
	case guards == 0:
		return nil, ErrNoGuard
	case guards > 1:
		return nil, fmt.Errorf("%w: %d", ErrManyGuards, guards)
	}
	lab.Blocked = g

	return lab, nil
}

// Patrol walks the guard over blocked and returns the cells it visits.
// loops is true when the guard re-enters a state it has already been in.
func Patrol(blocked *grid.Grid[bool], pos grid.Coordinate, facing grid.Direction) (visited *grid.Grid[bool], loops bool) {
	visited = grid.New(blocked.Columns(), blocked.Rows(), false)
	// One bit per heading records every (cell, direction) state seen.
	seen := grid.New[uint8](blocked.Columns(), blocked.Rows(), 0)

	visited.SetValue(pos, true)
	seen.SetValue(pos, 1<<facing)
	for {
		next := pos.Add(facing.Delta())
		wall, ok := blocked.Value(next)
		if !ok {
			return visited, false
		}
		if wall {
			facing = facing.TurnRight()
		} else {
			pos = next
			visited.SetValue(pos, true)
		}
		mask, _ := seen.Value(pos)
		if mask&(1<<facing) != 0 {
			return visited, true
		}
		seen.SetValue(pos, mask|1<<facing)
	}
}

// Solver implements puzzle.Solver and puzzle.Visualizer.
type Solver struct{}

func (Solver) Part1(r io.Reader) (int, error) { return Part1(r) }
func (Solver) Part2(r io.Reader) (int, error) { return Part2(r) }

// Part1 counts the distinct cells visited before the guard leaves the map.
func Part1(r io.Reader) (int, error) {
	lab, err := Parse(r)
	if err != nil {
		return 0, err
	}
	visited, _ := Patrol(lab.Blocked, lab.Start, lab.Facing)

	return visited.Count(isTrue), nil
}

// Part2 counts the cells where one added obstruction traps the guard in a
// loop. Only cells on the original route can change it, and the starting
// cell is excluded. Each candidate is tried on a clone of the map.
func Part2(r io.Reader) (int, error) {
	lab, err := Parse(r)
	if err != nil {
		return 0, err
	}
	route, _ := Patrol(lab.Blocked, lab.Start, lab.Facing)

	n := 0
	for i := 0; i < route.Cells(); i++ {
		c := route.Coordinate(i)
		if on, _ := route.Value(c); !on || c == lab.Start {
			continue
		}
		trial := lab.Blocked.Clone()
		trial.SetValue(c, true)
		if _, loops := Patrol(trial, lab.Start, lab.Facing); loops {
			n++
		}
	}

	return n, nil
}

// Visualize draws the map with the guard's route marked X.
func (Solver) Visualize(r io.Reader, w io.Writer) error {
	lab, err := Parse(r)
	if err != nil {
		return err
	}
	visited, _ := Patrol(lab.Blocked, lab.Start, lab.Facing)

	view := grid.New(lab.Blocked.Columns(), lab.Blocked.Rows(), '.')
	for i := 0; i < view.Cells(); i++ {
		c := view.Coordinate(i)
		if wall, _ := lab.Blocked.Value(c); wall {
			view.SetValue(c, '#')
		} else if on, _ := visited.Value(c); on {
			view.SetValue(c, 'X')
		}
	}

	return grid.Render(w, view, func(ch rune) rune { return ch })
}

func isTrue(b bool) bool { return b }
