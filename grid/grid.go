// SPDX-License-Identifier: MIT

package grid

import "iter"

// Grid is a dense width×height container stored row-major in one slice.
// Width is fixed at construction; height is always len(buffer)/width and is
// never stored on its own.
type Grid[T any] struct {
	buffer []T // flat backing storage, length == width*height
	width  int
}

// New allocates a width×height grid with every cell set to fill.
// A zero width or height yields an empty grid that is still safe to probe.
// Negative dimensions are not guarded.
// Complexity: O(W×H) time and memory.
func New[T any](width, height int, fill T) *Grid[T] {
	buffer := make([]T, width*height)
	for i := range buffer {
		buffer[i] = fill
	}

	return &Grid[T]{buffer: buffer, width: width}
}

// index maps c to its row-major slot, or reports false when c is outside
// [0,width)×[0,height). The x bound is checked separately from the linear
// bound: x == width would otherwise alias column 0 of the next row.
// Complexity: O(1).
func (g *Grid[T]) index(c Coordinate) (int, bool) {
	w := int64(g.width)
	if c.X < 0 || c.X >= w || c.Y < 0 || c.Y >= int64(g.Rows()) {
		return 0, false
	}
	// Both axes are in range, so the product cannot overflow.
	i := c.Y*w + c.X
	if i >= int64(len(g.buffer)) {
		return 0, false
	}

	return int(i), true
}

// Contains reports whether c addresses a cell of g.
// Complexity: O(1).
func (g *Grid[T]) Contains(c Coordinate) bool {
	_, ok := g.index(c)
	return ok
}

// Value returns the element at c. The boolean is false, and the element the
// zero value, when c lies outside the grid.
// Complexity: O(1).
func (g *Grid[T]) Value(c Coordinate) (T, bool) {
	i, ok := g.index(c)
	if !ok {
		var zero T
		return zero, false
	}

	return g.buffer[i], true
}

// SetValue overwrites the element at c and reports true. When c lies outside
// the grid nothing is written and SetValue reports false; callers walking a
// ray use that as their stop condition.
// Complexity: O(1).
func (g *Grid[T]) SetValue(c Coordinate, v T) bool {
	i, ok := g.index(c)
	if !ok {
		return false
	}
	g.buffer[i] = v

	return true
}

// Rows returns the number of rows (buffer length / width).
func (g *Grid[T]) Rows() int {
	if g.width == 0 {
		return 0
	}
	return len(g.buffer) / g.width
}

// Columns returns the fixed width.
func (g *Grid[T]) Columns() int {
	return g.width
}

// Cells returns the raw buffer length.
func (g *Grid[T]) Cells() int {
	return len(g.buffer)
}

// Coordinate converts a row-major position back to (x,y).
// It is the inverse of the internal index for 0 ≤ i < Cells().
func (g *Grid[T]) Coordinate(i int) Coordinate {
	if g.width == 0 {
		return Coordinate{}
	}
	return Pt(i%g.width, i/g.width)
}

// All yields every element in row-major order. The sequence can be ranged
// over any number of times; pair positions with Coordinate if needed.
func (g *Grid[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range g.buffer {
			if !yield(v) {
				return
			}
		}
	}
}

// Count returns how many elements satisfy pred.
func (g *Grid[T]) Count(pred func(T) bool) int {
	n := 0
	for v := range g.All() {
		if pred(v) {
			n++
		}
	}

	return n
}

// Clone returns a deep copy of the buffer. Writes to the clone never reach g.
// Complexity: O(W×H) time and memory.
func (g *Grid[T]) Clone() *Grid[T] {
	buffer := make([]T, len(g.buffer))
	copy(buffer, g.buffer)

	return &Grid[T]{buffer: buffer, width: g.width}
}
