// SPDX-License-Identifier: MIT

package puzzle

import "errors"

var (
	// ErrInvalidDay indicates a day number outside 1..25.
	ErrInvalidDay = errors.New("puzzle: day must be in 1..25")
	// ErrDuplicateDay indicates a second registration for the same day.
	ErrDuplicateDay = errors.New("puzzle: day already registered")
	// ErrUnknownDay indicates no solver is registered for the requested day.
	ErrUnknownDay = errors.New("puzzle: unknown day")
	// ErrNoVisualizer indicates the solver does not implement Visualizer.
	ErrNoVisualizer = errors.New("puzzle: day has no visualizer")
	// ErrInvalidPart indicates a part other than 1 or 2.
	ErrInvalidPart = errors.New("puzzle: part must be 1 or 2")
)
