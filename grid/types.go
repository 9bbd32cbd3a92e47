// SPDX-License-Identifier: MIT

package grid

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

var (
	conn4Offsets = []Coordinate{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	conn8Offsets = []Coordinate{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Offsets returns the unit displacements for the connectivity, clockwise
// starting from north. The returned slice is a copy.
func (c Connectivity) Offsets() []Coordinate {
	src := conn4Offsets
	if c == Conn8 {
		src = conn8Offsets
	}
	out := make([]Coordinate, len(src))
	copy(out, src)

	return out
}

// Direction is one of the four orthogonal headings, in clockwise order.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Delta returns the one-step displacement for d. Y grows downwards.
func (d Direction) Delta() Coordinate {
	switch d {
	case Up:
		return Coordinate{0, -1}
	case Right:
		return Coordinate{1, 0}
	case Down:
		return Coordinate{0, 1}
	case Left:
		return Coordinate{-1, 0}
	}
	return Coordinate{}
}

// TurnRight rotates d a quarter turn clockwise.
func (d Direction) TurnRight() Direction {
	return (d + 1) % 4
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return "unknown"
}

// ParseDirection maps the arrow glyphs ^ > v < to a Direction.
func ParseDirection(ch rune) (Direction, bool) {
	switch ch {
	case '^':
		return Up, true
	case '>':
		return Right, true
	case 'v':
		return Down, true
	case '<':
		return Left, true
	}
	return 0, false
}
