// SPDX-License-Identifier: MIT

package grid

import "errors"

var (
	// ErrEmptyGrid indicates the input text has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)
