// SPDX-License-Identifier: MIT

package input

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Lines reads r to the end and returns its lines without terminators.
func Lines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("input: read: %w", err)
	}

	return lines, nil
}

// Ints parses the whitespace-separated integers on line.
func Ints(line string) ([]int, error) {
	return parseAll(strings.Fields(line))
}

// SplitInts parses integers separated by sep, trimming spaces around each.
// An empty line yields an empty slice.
func SplitInts(line, sep string) ([]int, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}
	return parseAll(strings.Split(line, sep))
}

func parseAll(tokens []string) ([]int, error) {
	out := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		n, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadNumber, tok)
		}
		out = append(out, n)
	}

	return out, nil
}

// Abs returns |v|.
func Abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
