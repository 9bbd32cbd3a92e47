// SPDX-License-Identifier: MIT

package main

import (
	"github.com/katalvlaran/aoc2024/day01"
	"github.com/katalvlaran/aoc2024/day02"
	"github.com/katalvlaran/aoc2024/day03"
	"github.com/katalvlaran/aoc2024/day04"
	"github.com/katalvlaran/aoc2024/day05"
	"github.com/katalvlaran/aoc2024/day06"
	"github.com/katalvlaran/aoc2024/day07"
	"github.com/katalvlaran/aoc2024/day08"
	"github.com/katalvlaran/aoc2024/puzzle"
)

// registry wires every implemented day.
func registry() (*puzzle.Registry, error) {
	reg := puzzle.NewRegistry()
	days := []puzzle.Solver{
		day01.Solver{},
		day02.Solver{},
		day03.Solver{},
		day04.Solver{},
		day05.Solver{},
		day06.Solver{},
		day07.Solver{},
		day08.Solver{},
	}
	for i, s := range days {
		if err := reg.Register(i+1, s); err != nil {
			return nil, err
		}
	}

	return reg, nil
}
