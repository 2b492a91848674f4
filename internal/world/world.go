package world

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/wumpus/internal/telemetry"
)

const (
	// Default board parameters
	DefaultSize     = 4
	DefaultPitCount = 3
)

// World holds the board contents, the hint overlay, the visited mask and the
// player position for a single game.
type World struct {
	size    int
	cells   [][]Content
	hints   [][]Hint
	visited [][]bool
	player  Coord
	safe    mapset.Set[Coord]
	status  Status
	moves   int
}

// Layout fixes every object's position instead of placing them at random.
type Layout struct {
	Start  Coord
	Wumpus Coord
	Gold   Coord
	Pits   []Coord
}

// New creates a board of the given size with one Wumpus, one gold and
// pitCount pits placed at random outside the start cell's safe zone.
// A nil rng uses a time-seeded source.
func New(ctx context.Context, size, pitCount int, rng *rand.Rand) (*World, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "world.generate")
	defer span.End()

	if err := validate(size, pitCount); err != nil {
		span.RecordError(err)
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	w := newEmpty(size)
	start := Coord{Row: rng.Intn(size), Col: rng.Intn(size)}
	w.placePlayer(start)

	objects := make([]Content, 0, pitCount+2)
	objects = append(objects, ContentWumpus, ContentGold)
	for i := 0; i < pitCount; i++ {
		objects = append(objects, ContentPit)
	}
	for _, obj := range objects {
		if _, err := w.placeRandom(rng, obj); err != nil {
			span.RecordError(err)
			return nil, err
		}
	}

	w.generateHints()

	span.SetAttributes(
		attribute.Int("world.size", size),
		attribute.Int("world.pit_count", pitCount),
		attribute.Int("world.start_row", start.Row),
		attribute.Int("world.start_col", start.Col),
		attribute.Int("world.safe_zone_size", w.safe.Size()),
	)
	return w, nil
}

// NewFromLayout creates a board with every object at a fixed position. The
// layout must obey the same rules random placement does.
func NewFromLayout(size int, layout Layout) (*World, error) {
	if size < 2 {
		return nil, fmt.Errorf("%w: grid size %d is below 2", ErrInvalidConfiguration, size)
	}

	w := newEmpty(size)
	if !w.InBounds(layout.Start) {
		return nil, fmt.Errorf("%w: start %v is off the board", ErrInvalidConfiguration, layout.Start)
	}
	w.placePlayer(layout.Start)

	if err := w.placeAt(layout.Wumpus, ContentWumpus); err != nil {
		return nil, err
	}
	if err := w.placeAt(layout.Gold, ContentGold); err != nil {
		return nil, err
	}
	for _, pit := range layout.Pits {
		if err := w.placeAt(pit, ContentPit); err != nil {
			return nil, err
		}
	}

	w.generateHints()
	return w, nil
}

// newEmpty creates a board of empty cells with no hints.
func newEmpty(size int) *World {
	cells := make([][]Content, size)
	hints := make([][]Hint, size)
	visited := make([][]bool, size)
	for r := 0; r < size; r++ {
		cells[r] = make([]Content, size)
		for c := range cells[r] {
			cells[r][c] = ContentEmpty
		}
		hints[r] = make([]Hint, size)
		visited[r] = make([]bool, size)
	}

	return &World{
		size:    size,
		cells:   cells,
		hints:   hints,
		visited: visited,
		safe:    mapset.New[Coord](),
		status:  StatusPlaying,
	}
}

// Move shifts the player one step. Steps off the board and moves after the
// game has ended change nothing and return the current status.
func (w *World) Move(d Direction) Status {
	if w.status.IsTerminal() || !d.IsValid() {
		return w.status
	}

	dRow, dCol := d.Delta()
	target := w.player.Add(dRow, dCol)
	if !w.InBounds(target) {
		return w.status
	}

	w.cells[w.player.Row][w.player.Col] = ContentEmpty
	w.moves++

	entered := w.cells[target.Row][target.Col]
	if s := statusFor(entered); s.IsTerminal() {
		// The player token is not placed on the final cell.
		w.status = s
		w.player = target
		return s
	}

	w.cells[target.Row][target.Col] = ContentPlayer
	w.player = target
	w.visited[target.Row][target.Col] = true
	return w.status
}

// Size returns the number of rows (and columns) on the board.
func (w *World) Size() int {
	return w.size
}

// Player returns the player's position. After a terminal move it is the cell
// that ended the game.
func (w *World) Player() Coord {
	return w.player
}

// Status returns the current game status.
func (w *World) Status() Status {
	return w.status
}

// Moves returns how many steps the player has taken.
func (w *World) Moves() int {
	return w.moves
}

// InBounds returns true if the coordinate is on the board.
func (w *World) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < w.size && c.Col >= 0 && c.Col < w.size
}

// ContentAt returns the content at the given position, or ContentEmpty if out of bounds.
func (w *World) ContentAt(c Coord) Content {
	if !w.InBounds(c) {
		return ContentEmpty
	}
	return w.cells[c.Row][c.Col]
}

// HintAt returns the hint at the given position, or HintNone if out of bounds.
func (w *World) HintAt(c Coord) Hint {
	if !w.InBounds(c) {
		return HintNone
	}
	return w.hints[c.Row][c.Col]
}

// Visited returns true if the player has stood on the cell.
func (w *World) Visited(c Coord) bool {
	if !w.InBounds(c) {
		return false
	}
	return w.visited[c.Row][c.Col]
}

// InSafeZone returns true if the cell is the start cell or one of its neighbors.
func (w *World) InSafeZone(c Coord) bool {
	return w.safe.Has(c)
}

// SafeZone returns the safe zone cells in row-major order.
func (w *World) SafeZone() []Coord {
	zone := make([]Coord, 0, w.safe.Size())
	for r := 0; r < w.size; r++ {
		for c := 0; c < w.size; c++ {
			if w.safe.Has(Coord{Row: r, Col: c}) {
				zone = append(zone, Coord{Row: r, Col: c})
			}
		}
	}
	return zone
}

// Neighbors returns the in-bounds orthogonal neighbors of a cell.
func (w *World) Neighbors(c Coord) []Coord {
	result := make([]Coord, 0, 4)
	for _, d := range AllDirections() {
		dRow, dCol := d.Delta()
		n := c.Add(dRow, dCol)
		if w.InBounds(n) {
			result = append(result, n)
		}
	}
	return result
}
