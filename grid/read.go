// SPDX-License-Identifier: MIT

package grid

import (
	"bufio"
	"fmt"
	"io"
	"unicode/utf8"
)

// CellFunc maps the character ch found at c to the value stored there.
// Callers that need marker positions (a start cell, antenna labels) record
// them from inside the closure.
type CellFunc[T any] func(c Coordinate, ch rune) (T, error)

// Read parses a rectangular block of text, one row per line, into a grid.
// The first line fixes the width; every later line must match it.
// Trailing blank lines are ignored. A blank line before or between rows is
// an error naming the blank row.
//
// Errors: ErrEmptyGrid, ErrNonRectangular (wrapped with the row), any error
// returned by cell (wrapped with the coordinate) and read errors.
// Complexity: O(W×H).
func Read[T any](r io.Reader, cell CellFunc[T]) (*Grid[T], error) {
	var (
		buffer  []T
		width   int
		y       int
		pending int // blank lines seen but not yet known to be trailing
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			pending++
			continue
		}
		if y == 0 {
			width = utf8.RuneCountInString(line)
		}
		if pending > 0 {
			return nil, fmt.Errorf("row %d is blank: %w", y, ErrNonRectangular)
		}
		if utf8.RuneCountInString(line) != width {
			return nil, fmt.Errorf("row %d: %w", y, ErrNonRectangular)
		}
		x := 0
		for _, ch := range line {
			c := Pt(x, y)
			v, err := cell(c, ch)
			if err != nil {
				return nil, fmt.Errorf("cell %v: %w", c, err)
			}
			buffer = append(buffer, v)
			x++
		}
		y++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read: %w", err)
	}
	if y == 0 || width == 0 {
		return nil, ErrEmptyGrid
	}

	return &Grid[T]{buffer: buffer, width: width}, nil
}

// Runes reads the text as a grid of its characters.
func Runes(r io.Reader) (*Grid[rune], error) {
	return Read(r, func(_ Coordinate, ch rune) (rune, error) {
		return ch, nil
	})
}
