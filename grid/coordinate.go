// SPDX-License-Identifier: MIT

package grid

import "fmt"

// Coordinate is a position (or displacement) in 2D integer space.
// It is a plain value: copy it freely, compare it with ==.
type Coordinate struct {
	X, Y int64
}

// Pt builds a Coordinate from int components.
func Pt(x, y int) Coordinate {
	return Coordinate{X: int64(x), Y: int64(y)}
}

// Add returns the componentwise sum c + o.
func (c Coordinate) Add(o Coordinate) Coordinate {
	return Coordinate{X: c.X + o.X, Y: c.Y + o.Y}
}

// Sub returns the componentwise difference c - o, i.e. the displacement
// from o to c.
func (c Coordinate) Sub(o Coordinate) Coordinate {
	return Coordinate{X: c.X - o.X, Y: c.Y - o.Y}
}

// Scale multiplies both components by k.
func (c Coordinate) Scale(k int64) Coordinate {
	return Coordinate{X: c.X * k, Y: c.Y * k}
}

// AddAssign is the in-place form of Add.
func (c *Coordinate) AddAssign(o Coordinate) {
	*c = c.Add(o)
}

// SubAssign is the in-place form of Sub.
func (c *Coordinate) SubAssign(o Coordinate) {
	*c = c.Sub(o)
}

// String renders the coordinate as "(x,y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
