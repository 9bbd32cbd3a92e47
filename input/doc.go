// SPDX-License-Identifier: MIT

// Package input holds the small parsing helpers shared by the day solvers:
// reading lines and turning whitespace- or separator-delimited tokens into
// integers. It deliberately stops there; each day owns its own format.
package input
