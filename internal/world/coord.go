package world

import "fmt"

// Coord is a grid position. Row 0 is the top row.
type Coord struct {
	Row, Col int
}

// Add returns the coordinate shifted by the given deltas.
func (c Coord) Add(dRow, dCol int) Coord {
	return Coord{Row: c.Row + dRow, Col: c.Col + dCol}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Direction is one of the four orthogonal moves.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// AllDirections returns all valid directions for iteration.
func AllDirections() []Direction {
	return []Direction{Up, Down, Left, Right}
}

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// IsValid returns true if the direction is one of the four moves.
func (d Direction) IsValid() bool {
	return d >= Up && d <= Right
}

// Delta returns the row and column offsets for this direction.
func (d Direction) Delta() (rowDelta, colDelta int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	default:
		return 0, 0
	}
}
