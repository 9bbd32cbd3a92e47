// SPDX-License-Identifier: MIT

// Package puzzle wires day solvers to their input files.
//
// A Registry maps day numbers to Solvers. A Runner resolves the input path
// (<dataDir>/day<N>/<inputName> unless a file is given explicitly), runs the
// requested parts, prints each answer and logs one structured entry per part.
//
// Errors:
//
//   - ErrInvalidDay: day outside 1..25.
//   - ErrDuplicateDay: a day registered twice.
//   - ErrUnknownDay: no solver registered for the day.
//   - ErrNoVisualizer: the day's solver cannot render its state.
package puzzle
