package world

// Snapshot is a read-only copy of the board for rendering.
type Snapshot struct {
	Size    int
	Cells   [][]Content
	Hints   [][]Hint
	Visited [][]bool
	Player  Coord
	Status  Status
	Moves   int
}

// Snapshot copies the current board state. Changing the copy does not
// affect the world.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Size:    w.size,
		Cells:   make([][]Content, w.size),
		Hints:   make([][]Hint, w.size),
		Visited: make([][]bool, w.size),
		Player:  w.player,
		Status:  w.status,
		Moves:   w.moves,
	}
	for r := 0; r < w.size; r++ {
		s.Cells[r] = append([]Content(nil), w.cells[r]...)
		s.Hints[r] = append([]Hint(nil), w.hints[r]...)
		s.Visited[r] = append([]bool(nil), w.visited[r]...)
	}
	return s
}

// ContentAt returns the content at the given position.
func (s Snapshot) ContentAt(c Coord) Content {
	return s.Cells[c.Row][c.Col]
}

// HintAt returns the hint at the given position.
func (s Snapshot) HintAt(c Coord) Hint {
	return s.Hints[c.Row][c.Col]
}

// IsVisited returns true if the player has stood on the cell.
func (s Snapshot) IsVisited(c Coord) bool {
	return s.Visited[c.Row][c.Col]
}
