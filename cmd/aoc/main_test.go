package main

import (
	"bytes"
	"path/filepath"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2024/puzzle"
)

func fixture(day string, name string) string {
	return filepath.Join("..", "..", day, "testdata", name)
}

func TestRegistry(t *testing.T) {
	reg, err := registry()
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, reg.Days())
}

func TestApp_Examples(t *testing.T) {
	cases := []struct {
		day, dir, file string
		want           string
	}{
		{"1", "day01", "example.txt", "Part one result: 11\nPart two result: 31\n"},
		{"2", "day02", "example.txt", "Part one result: 2\nPart two result: 4\n"},
		{"4", "day04", "example.txt", "Part one result: 18\nPart two result: 9\n"},
		{"5", "day05", "example.txt", "Part one result: 143\nPart two result: 123\n"},
		{"6", "day06", "example.txt", "Part one result: 41\nPart two result: 6\n"},
		{"7", "day07", "example.txt", "Part one result: 3749\nPart two result: 11387\n"},
		{"8", "day08", "example.txt", "Part one result: 14\nPart two result: 34\n"},
	}
	for _, tc := range cases {
		t.Run(tc.dir, func(t *testing.T) {
			log, _ := logtest.NewNullLogger()
			var out bytes.Buffer
			app := newApp(log, &out)
			err := app.Run([]string{"aoc", "--day", tc.day, "--input", fixture(tc.dir, tc.file)})
			require.NoError(t, err)
			require.Equal(t, tc.want, out.String())
		})
	}
}

func TestApp_SinglePart(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	var out bytes.Buffer
	app := newApp(log, &out)
	err := app.Run([]string{"aoc", "-d", "3", "-p", "2", "-i", fixture("day03", "example_part2.txt")})
	require.NoError(t, err)
	require.Equal(t, "Part two result: 48\n", out.String())
}

func TestApp_DataDirLayout(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	var out bytes.Buffer
	app := newApp(log, &out)
	err := app.Run([]string{"aoc", "--day", "9", "--data", t.TempDir()})
	require.ErrorIs(t, err, puzzle.ErrUnknownDay)
	require.Empty(t, hook.AllEntries())
}

func TestApp_Visualize(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	var out bytes.Buffer
	app := newApp(log, &out)
	err := app.Run([]string{"aoc", "--day", "6", "--visualize", "--input", fixture("day06", "example.txt")})
	require.NoError(t, err)
	require.Contains(t, out.String(), "....XXXXX#\n")

	out.Reset()
	err = newApp(log, &out).Run([]string{"aoc", "--day", "1", "--visualize", "--input", fixture("day01", "example.txt")})
	require.ErrorIs(t, err, puzzle.ErrNoVisualizer)
}

func TestApp_Errors(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	var out bytes.Buffer

	err := newApp(log, &out).Run([]string{"aoc", "--part", "3", "--day", "1"})
	require.ErrorIs(t, err, puzzle.ErrInvalidPart)

	err = newApp(log, &out).Run([]string{"aoc"})
	require.ErrorIs(t, err, errNoDay)
}
