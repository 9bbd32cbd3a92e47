package day08_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2024/day08"
	"github.com/katalvlaran/aoc2024/grid"
)

func open(t *testing.T) *os.File {
	t.Helper()
	f, err := os.Open("testdata/example.txt")
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func TestPart1(t *testing.T) {
	got, err := day08.Part1(open(t))
	require.NoError(t, err)
	require.Equal(t, 14, got)
}

func TestPart2(t *testing.T) {
	got, err := day08.Part2(open(t))
	require.NoError(t, err)
	require.Equal(t, 34, got)
}

func TestParse(t *testing.T) {
	f, err := day08.Parse(open(t))
	require.NoError(t, err)
	require.Equal(t, 12, f.Width)
	require.Equal(t, 12, f.Height)
	require.Len(t, f.Antennas['0'], 4)
	require.Equal(t, []grid.Coordinate{grid.Pt(6, 5), grid.Pt(8, 8), grid.Pt(9, 9)}, f.Antennas['A'])
}

// TestAntinodes_Pair checks the single-pair projection, including one
// antinode that falls off the map.
func TestAntinodes_Pair(t *testing.T) {
	const m = "..........\n" +
		"..........\n" +
		"..........\n" +
		"....a.....\n" +
		"..........\n" +
		".....a....\n" +
		"..........\n" +
		"..........\n" +
		"..........\n" +
		"..........\n"
	f, err := day08.Parse(strings.NewReader(m))
	require.NoError(t, err)

	g := f.Antinodes(false)
	require.Equal(t, 2, g.Count(func(b bool) bool { return b }))
	for _, c := range []grid.Coordinate{grid.Pt(3, 1), grid.Pt(6, 7)} {
		v, ok := g.Value(c)
		require.True(t, ok)
		require.True(t, v, "antinode at %v", c)
	}

	// Moving one antenna to the edge pushes an antinode off the map.
	f.Antennas['a'] = []grid.Coordinate{grid.Pt(1, 1), grid.Pt(3, 2)}
	require.Equal(t, 1, f.Antinodes(false).Count(func(b bool) bool { return b }))
}

func TestAntinodes_Harmonics(t *testing.T) {
	const m = "T.........\n" +
		"...T......\n" +
		".T........\n" +
		"..........\n" +
		"..........\n" +
		"..........\n" +
		"..........\n" +
		"..........\n" +
		"..........\n" +
		"..........\n"
	got, err := day08.Part2(strings.NewReader(m))
	require.NoError(t, err)
	require.Equal(t, 9, got)
}

func TestVisualize(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, day08.Solver{}.Visualize(open(t), &buf))
	want := strings.Join([]string{
		"##....#....#",
		".#.#....#...",
		"..#.##....#.",
		"..##...#....",
		"....#....#..",
		".#...##....#",
		"...#..#.....",
		"#....#.#....",
		"..#.....#...",
		"....#....#..",
		".#........#.",
		"...#......##",
	}, "\n") + "\n"
	require.Equal(t, want, buf.String())
}

func TestAntinodes_SharedCell(t *testing.T) {
	f := &day08.Field{
		Width:    4,
		Height:   4,
		Antennas: map[rune][]grid.Coordinate{'a': {grid.Pt(1, 2), grid.Pt(1, 2)}},
	}

	g := f.Antinodes(true)
	require.Equal(t, 1, g.Count(func(b bool) bool { return b }))
	v, _ := g.Value(grid.Pt(1, 2))
	require.True(t, v)
}
