package world

import (
	"fmt"
	"math/rand"
)

// maxSafeZone returns the largest safe zone a start cell can have on a board
// of the given size.
func maxSafeZone(size int) int {
	if size >= 3 {
		return 5
	}
	// Every cell of a 2x2 board is a corner.
	return 3
}

// validate rejects boards that cannot hold every object outside the safe
// zone, whichever start cell is drawn.
func validate(size, pitCount int) error {
	if size < 2 {
		return fmt.Errorf("%w: grid size %d is below 2", ErrInvalidConfiguration, size)
	}
	if pitCount < 0 {
		return fmt.Errorf("%w: pit count %d is negative", ErrInvalidConfiguration, pitCount)
	}

	objects := pitCount + 2
	cells := size * size
	if objects >= cells {
		return fmt.Errorf("%w: %d objects do not fit on a %dx%d grid", ErrInvalidConfiguration, objects, size, size)
	}
	if free := cells - maxSafeZone(size); objects > free {
		return fmt.Errorf("%w: %d objects need more than the %d cells outside the safe zone",
			ErrInvalidConfiguration, objects, free)
	}
	return nil
}

// placePlayer puts the player on the start cell, marks it visited and
// computes the safe zone around it.
func (w *World) placePlayer(start Coord) {
	w.cells[start.Row][start.Col] = ContentPlayer
	w.player = start
	w.visited[start.Row][start.Col] = true

	w.safe.Put(start)
	for _, n := range w.Neighbors(start) {
		w.safe.Put(n)
	}
}

// candidates returns every empty cell outside the safe zone, in row-major order.
func (w *World) candidates() []Coord {
	var free []Coord
	for r := 0; r < w.size; r++ {
		for c := 0; c < w.size; c++ {
			pos := Coord{Row: r, Col: c}
			if w.cells[r][c] == ContentEmpty && !w.safe.Has(pos) {
				free = append(free, pos)
			}
		}
	}
	return free
}

// placeRandom puts the content on a uniformly chosen candidate cell.
func (w *World) placeRandom(rng *rand.Rand, content Content) (Coord, error) {
	free := w.candidates()
	if len(free) == 0 {
		return Coord{}, fmt.Errorf("%w: placing %s", ErrPlacementExhausted, content)
	}

	pos := free[rng.Intn(len(free))]
	w.cells[pos.Row][pos.Col] = content
	return pos, nil
}

// placeAt puts the content on a fixed cell, which must be an empty cell
// outside the safe zone.
func (w *World) placeAt(pos Coord, content Content) error {
	switch {
	case !w.InBounds(pos):
		return fmt.Errorf("%w: %s at %v is off the board", ErrInvalidConfiguration, content, pos)
	case w.safe.Has(pos):
		return fmt.Errorf("%w: %s at %v is inside the safe zone", ErrInvalidConfiguration, content, pos)
	case w.cells[pos.Row][pos.Col] != ContentEmpty:
		return fmt.Errorf("%w: %s at %v overlaps %s", ErrInvalidConfiguration, content, pos, w.cells[pos.Row][pos.Col])
	}

	w.cells[pos.Row][pos.Col] = content
	return nil
}

// generateHints marks a breeze next to every pit and a stench next to the Wumpus.
func (w *World) generateHints() {
	for r := 0; r < w.size; r++ {
		for c := 0; c < w.size; c++ {
			var hint Hint
			switch w.cells[r][c] {
			case ContentPit:
				hint = HintBreeze
			case ContentWumpus:
				hint = HintStench
			default:
				continue
			}
			for _, n := range w.Neighbors(Coord{Row: r, Col: c}) {
				w.hints[n.Row][n.Col] = w.hints[n.Row][n.Col].With(hint)
			}
		}
	}
}
