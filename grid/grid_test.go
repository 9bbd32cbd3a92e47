package grid_test

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/aoc2024/grid"
)

// GridSuite exercises the bounds-checked container on a 4×3 int grid.
type GridSuite struct {
	suite.Suite
	g *grid.Grid[int]
}

const (
	suiteWidth  = 4
	suiteHeight = 3
)

func (s *GridSuite) SetupTest() {
	s.g = grid.New(suiteWidth, suiteHeight, -1)
}

// TestShape checks Rows×Columns == Cells before and after writes.
func (s *GridSuite) TestShape() {
	s.Equal(suiteHeight, s.g.Rows())
	s.Equal(suiteWidth, s.g.Columns())
	s.Equal(suiteWidth*suiteHeight, s.g.Cells())

	for i := 0; i < s.g.Cells(); i++ {
		s.True(s.g.SetValue(s.g.Coordinate(i), i))
	}
	s.Equal(s.g.Cells(), s.g.Rows()*s.g.Columns())
}

// TestFill verifies every cell starts at the fill value.
func (s *GridSuite) TestFill() {
	for v := range s.g.All() {
		s.Equal(-1, v)
	}
}

// TestRoundTrip writes a distinct value into every in-range cell and reads it back.
func (s *GridSuite) TestRoundTrip() {
	for y := 0; y < suiteHeight; y++ {
		for x := 0; x < suiteWidth; x++ {
			c := grid.Pt(x, y)
			require.True(s.T(), s.g.SetValue(c, y*10+x))
		}
	}
	for y := 0; y < suiteHeight; y++ {
		for x := 0; x < suiteWidth; x++ {
			v, ok := s.g.Value(grid.Pt(x, y))
			s.True(ok)
			s.Equal(y*10+x, v)
		}
	}
}

// TestOutOfRange checks that every rejected probe reads absent and writes nothing.
func (s *GridSuite) TestOutOfRange() {
	outside := []grid.Coordinate{
		{X: -1, Y: 0},
		{X: 0, Y: -1},
		{X: suiteWidth, Y: 0},
		{X: 0, Y: suiteHeight},
		{X: suiteWidth, Y: suiteHeight},
		{X: -suiteWidth, Y: 1},
		{X: math.MaxInt64, Y: 0},
		{X: 0, Y: math.MaxInt64},
		{X: math.MinInt64, Y: math.MinInt64},
	}
	before := slices.Collect(s.g.All())
	for _, c := range outside {
		v, ok := s.g.Value(c)
		s.False(ok, "Value(%v)", c)
		s.Zero(v)
		s.False(s.g.SetValue(c, 99), "SetValue(%v)", c)
		s.False(s.g.Contains(c))
	}
	s.Equal(before, slices.Collect(s.g.All()))
}

// TestRowWrap is the regression for x == width aliasing the next row.
func (s *GridSuite) TestRowWrap() {
	require.True(s.T(), s.g.SetValue(grid.Pt(0, 1), 7))

	_, ok := s.g.Value(grid.Pt(suiteWidth, 0))
	s.False(ok, "x == width must not wrap into row 1")
	s.False(s.g.SetValue(grid.Pt(suiteWidth, 0), 8))

	v, _ := s.g.Value(grid.Pt(0, 1))
	s.Equal(7, v)
}

// TestCoordinate verifies the positional index maps back to (x,y).
func (s *GridSuite) TestCoordinate() {
	s.Equal(grid.Pt(0, 0), s.g.Coordinate(0))
	s.Equal(grid.Pt(3, 0), s.g.Coordinate(3))
	s.Equal(grid.Pt(0, 1), s.g.Coordinate(4))
	s.Equal(grid.Pt(3, 2), s.g.Coordinate(11))
}

// TestIterationOrder checks row-major order and that All can be ranged twice.
func (s *GridSuite) TestIterationOrder() {
	for i := 0; i < s.g.Cells(); i++ {
		s.g.SetValue(s.g.Coordinate(i), i)
	}
	first := slices.Collect(s.g.All())
	second := slices.Collect(s.g.All())
	s.Equal([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, first)
	s.Equal(first, second)

	// Early break must stop the sequence cleanly.
	n := 0
	for range s.g.All() {
		n++
		if n == 3 {
			break
		}
	}
	s.Equal(3, n)
}

// TestClone checks that writes to a clone stay out of the original.
func (s *GridSuite) TestClone() {
	s.g.SetValue(grid.Pt(1, 1), 5)
	c := s.g.Clone()
	require.True(s.T(), c.SetValue(grid.Pt(1, 1), 6))
	require.True(s.T(), c.SetValue(grid.Pt(2, 2), 6))

	v, _ := s.g.Value(grid.Pt(1, 1))
	s.Equal(5, v)
	v, _ = s.g.Value(grid.Pt(2, 2))
	s.Equal(-1, v)
	s.Equal(s.g.Rows(), c.Rows())
	s.Equal(s.g.Columns(), c.Columns())
}

// TestCount counts matching cells.
func (s *GridSuite) TestCount() {
	s.g.SetValue(grid.Pt(0, 0), 1)
	s.g.SetValue(grid.Pt(3, 2), 1)
	s.Equal(2, s.g.Count(func(v int) bool { return v == 1 }))
	s.Equal(10, s.g.Count(func(v int) bool { return v == -1 }))
}

func TestGridSuite(t *testing.T) {
	suite.Run(t, new(GridSuite))
}

// TestNew_Degenerate verifies zero-sized grids are usable and never panic.
func TestNew_Degenerate(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
		rows          int
	}{
		{"ZeroWidth", 0, 5, 0},
		{"ZeroHeight", 5, 0, 0},
		{"ZeroBoth", 0, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := grid.New(tc.width, tc.height, true)
			require.Equal(t, 0, g.Cells())
			require.Equal(t, tc.rows, g.Rows())
			require.Equal(t, tc.width, g.Columns())
			require.Equal(t, g.Cells(), g.Rows()*g.Columns())

			_, ok := g.Value(grid.Pt(0, 0))
			require.False(t, ok)
			require.False(t, g.SetValue(grid.Pt(0, 0), false))
			require.Empty(t, slices.Collect(g.All()))
		})
	}
}
