// SPDX-License-Identifier: MIT

// Package grid provides a fixed-size, row-major, bounds-checked 2D container
// and the integer Coordinate type used to address it.
//
// What:
//
//   - Coordinate is an (X, Y) pair of int64 with Add, Sub, Scale and the
//     in-place AddAssign / SubAssign.
//   - Grid[T] stores width×height cells in one flat slice (index = y*width + x).
//   - Value / SetValue never panic: an out-of-range probe reports absence
//     (false) instead, so ray marching and neighbor scans can walk off the
//     edge as ordinary control flow.
//   - Read builds a grid from a block of text, Render writes one back.
//
// Bounds:
//
//	A linear buffer knows nothing about rows, so a probe must pass BOTH the
//	linear-length check and the per-axis check. For width W the coordinate
//	(W, 0) lands on linear index W, a valid slot that belongs to (0, 1); it
//	is still rejected.
//
// Complexity:
//
//   - New, Clone:            O(W×H) time and memory.
//   - Value, SetValue:       O(1).
//   - All, Count, Render:    O(W×H).
//
// Errors (Read only):
//
//   - ErrEmptyGrid: the input has no rows or a zero-width first row.
//   - ErrNonRectangular: a row differs in width from the first one.
package grid
