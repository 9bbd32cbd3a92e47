// SPDX-License-Identifier: MIT

// Package aoc2024 is a set of small, independent puzzle solvers built on one
// shared primitive: a bounds-checked 2D grid.
//
// Layout:
//
//	grid/     — Coordinate arithmetic, Grid[T], Direction, text Read/Render
//	input/    — line and integer parsing helpers
//	day01/ … day08/ — one package per puzzle day, Part1/Part2 over an io.Reader
//	puzzle/   — day registry and the runner that resolves input files and logs
//	cmd/aoc/  — command-line entry point
//
// Quick ASCII example (a 5×3 Grid[bool] after marking a ray from (0,0) by (2,1)):
//
//	#....
//	..#..
//	....#
//
//	go run ./cmd/aoc --day 8 --input day08/testdata/example.txt
package aoc2024
