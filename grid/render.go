// SPDX-License-Identifier: MIT

package grid

import (
	"bufio"
	"io"
)

// Render writes g to w, one line per row, translating each element with glyph.
// It is meant for diagnostics; nothing reads the output back.
func Render[T any](w io.Writer, g *Grid[T], glyph func(T) rune) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Columns(); x++ {
			v, _ := g.Value(Pt(x, y))
			if _, err := bw.WriteRune(glyph(v)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// RenderBool renders true cells as '#' and false cells as '.'.
func RenderBool(w io.Writer, g *Grid[bool]) error {
	return Render(w, g, func(v bool) rune {
		if v {
			return '#'
		}
		return '.'
	})
}
