package world

import (
	"context"
	"errors"
	"math/rand"
	"reflect"
	"testing"
)

// scenarioLayout is the 4x4 board used by the hand-checked hint tests.
func scenarioLayout() Layout {
	return Layout{
		Start:  Coord{0, 0},
		Wumpus: Coord{3, 3},
		Gold:   Coord{0, 3},
		Pits:   []Coord{{1, 1}, {2, 2}, {3, 0}},
	}
}

func mustLayout(t *testing.T, size int, layout Layout) *World {
	t.Helper()
	w, err := NewFromLayout(size, layout)
	if err != nil {
		t.Fatalf("NewFromLayout() error: %v", err)
	}
	return w
}

func TestNewPlacesEveryObjectOutsideSafeZone(t *testing.T) {
	ctx := context.Background()

	for size := 3; size <= 7; size++ {
		maxPits := size*size - maxSafeZone(size) - 2
		for _, pits := range []int{0, maxPits / 2, maxPits} {
			for seed := int64(0); seed < 50; seed++ {
				w, err := New(ctx, size, pits, rand.New(rand.NewSource(seed)))
				if err != nil {
					t.Fatalf("New(%d, %d) seed %d error: %v", size, pits, seed, err)
				}

				counts := map[Content]int{}
				for r := 0; r < size; r++ {
					for c := 0; c < size; c++ {
						pos := Coord{r, c}
						content := w.ContentAt(pos)
						counts[content]++
						if content != ContentEmpty && content != ContentPlayer && w.InSafeZone(pos) {
							t.Errorf("size %d seed %d: %s at %v is inside the safe zone", size, seed, content, pos)
						}
					}
				}

				if counts[ContentPlayer] != 1 || counts[ContentWumpus] != 1 || counts[ContentGold] != 1 {
					t.Errorf("size %d seed %d: got %d players, %d wumpus, %d gold; want 1 each",
						size, seed, counts[ContentPlayer], counts[ContentWumpus], counts[ContentGold])
				}
				if counts[ContentPit] != pits {
					t.Errorf("size %d seed %d: got %d pits, want %d", size, seed, counts[ContentPit], pits)
				}
				if w.ContentAt(w.Player()) != ContentPlayer {
					t.Errorf("size %d seed %d: player position %v does not hold the player", size, seed, w.Player())
				}
				if w.Status() != StatusPlaying {
					t.Errorf("size %d seed %d: status = %v, want playing", size, seed, w.Status())
				}
			}
		}
	}
}

func TestNewSafeZone(t *testing.T) {
	tests := []struct {
		name  string
		start Coord
		want  []Coord
	}{
		{"corner", Coord{0, 0}, []Coord{{0, 0}, {0, 1}, {1, 0}}},
		{"edge", Coord{0, 2}, []Coord{{0, 1}, {0, 2}, {0, 3}, {1, 2}}},
		{"interior", Coord{2, 1}, []Coord{{1, 1}, {2, 0}, {2, 1}, {2, 2}, {3, 1}}},
	}

	for _, tt := range tests {
		w := newEmpty(4)
		w.placePlayer(tt.start)
		if got := w.SafeZone(); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s: SafeZone() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestNewStartCellVisited(t *testing.T) {
	w, err := New(context.Background(), DefaultSize, DefaultPitCount, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	for r := 0; r < w.Size(); r++ {
		for c := 0; c < w.Size(); c++ {
			pos := Coord{r, c}
			if got, want := w.Visited(pos), pos == w.Player(); got != want {
				t.Errorf("Visited(%v) = %v, want %v", pos, got, want)
			}
		}
	}
}

func TestNewReproducibility(t *testing.T) {
	ctx := context.Background()
	w1, err := New(ctx, 6, 5, rand.New(rand.NewSource(12345)))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	w2, err := New(ctx, 6, 5, rand.New(rand.NewSource(12345)))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	if !reflect.DeepEqual(w1.Snapshot(), w2.Snapshot()) {
		t.Error("Worlds with the same seed should be identical")
	}
}

func TestNewInvalidConfiguration(t *testing.T) {
	tests := []struct {
		size, pits int
		valid      bool
	}{
		{1, 0, false},
		{2, 0, false}, // one cell outside a 3-cell safe zone
		{3, 2, true},
		{3, 3, false},
		{4, -1, false},
		{4, 9, true},
		{4, 10, false},
		{10, 93, true},
		{10, 94, false},
	}

	for _, tt := range tests {
		_, err := New(context.Background(), tt.size, tt.pits, rand.New(rand.NewSource(1)))
		if tt.valid && err != nil {
			t.Errorf("New(%d, %d) should be valid, got error: %v", tt.size, tt.pits, err)
		}
		if !tt.valid && !errors.Is(err, ErrInvalidConfiguration) {
			t.Errorf("New(%d, %d) error = %v, want ErrInvalidConfiguration", tt.size, tt.pits, err)
		}
	}
}

func TestPlaceRandomExhausted(t *testing.T) {
	w := newEmpty(3)
	w.placePlayer(Coord{1, 1})
	for _, corner := range []Coord{{0, 0}, {0, 2}, {2, 0}, {2, 2}} {
		if err := w.placeAt(corner, ContentPit); err != nil {
			t.Fatalf("placeAt(%v) error: %v", corner, err)
		}
	}

	_, err := w.placeRandom(rand.New(rand.NewSource(1)), ContentGold)
	if !errors.Is(err, ErrPlacementExhausted) {
		t.Errorf("placeRandom() error = %v, want ErrPlacementExhausted", err)
	}
}

func TestNewFromLayoutRejectsBadLayouts(t *testing.T) {
	tests := []struct {
		name   string
		layout Layout
	}{
		{"wumpus in safe zone", Layout{Start: Coord{0, 0}, Wumpus: Coord{0, 1}, Gold: Coord{3, 3}}},
		{"gold in safe zone", Layout{Start: Coord{0, 0}, Wumpus: Coord{3, 3}, Gold: Coord{1, 0}}},
		{"pit on gold", Layout{Start: Coord{0, 0}, Wumpus: Coord{3, 3}, Gold: Coord{2, 2}, Pits: []Coord{{2, 2}}}},
		{"pit off board", Layout{Start: Coord{0, 0}, Wumpus: Coord{3, 3}, Gold: Coord{2, 2}, Pits: []Coord{{4, 0}}}},
		{"start off board", Layout{Start: Coord{-1, 0}, Wumpus: Coord{3, 3}, Gold: Coord{2, 2}}},
	}

	for _, tt := range tests {
		if _, err := NewFromLayout(4, tt.layout); !errors.Is(err, ErrInvalidConfiguration) {
			t.Errorf("%s: error = %v, want ErrInvalidConfiguration", tt.name, err)
		}
	}
}

func TestHintsScenario(t *testing.T) {
	w := mustLayout(t, 4, scenarioLayout())

	want := [][]Hint{
		{HintNone, HintBreeze, HintNone, HintNone},
		{HintBreeze, HintNone, HintBreeze, HintNone},
		{HintBreeze, HintBreeze, HintNone, HintBoth},
		{HintNone, HintBreeze, HintBoth, HintNone},
	}

	for r := range want {
		for c := range want[r] {
			if got := w.HintAt(Coord{r, c}); got != want[r][c] {
				t.Errorf("HintAt(%d,%d) = %v, want %v", r, c, got, want[r][c])
			}
		}
	}
}

func TestHintsMatchAdjacency(t *testing.T) {
	ctx := context.Background()
	for seed := int64(0); seed < 100; seed++ {
		w, err := New(ctx, 6, 8, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("New() seed %d error: %v", seed, err)
		}

		for r := 0; r < w.Size(); r++ {
			for c := 0; c < w.Size(); c++ {
				pos := Coord{r, c}
				want := HintNone
				for _, n := range w.Neighbors(pos) {
					switch w.ContentAt(n) {
					case ContentPit:
						want = want.With(HintBreeze)
					case ContentWumpus:
						want = want.With(HintStench)
					}
				}
				if got := w.HintAt(pos); got != want {
					t.Errorf("seed %d: HintAt(%v) = %v, want %v", seed, pos, got, want)
				}
			}
		}
	}
}

func TestHintWithSaturates(t *testing.T) {
	tests := []struct {
		a, b, want Hint
	}{
		{HintNone, HintBreeze, HintBreeze},
		{HintBreeze, HintBreeze, HintBreeze},
		{HintBreeze, HintStench, HintBoth},
		{HintStench, HintBreeze, HintBoth},
		{HintBoth, HintBreeze, HintBoth},
		{HintBoth, HintStench, HintBoth},
	}

	for _, tt := range tests {
		if got := tt.a.With(tt.b); got != tt.want {
			t.Errorf("%v.With(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestMoveOffBoardIsNoop(t *testing.T) {
	w := mustLayout(t, 4, scenarioLayout())

	for _, d := range []Direction{Up, Left} {
		if got := w.Move(d); got != StatusPlaying {
			t.Errorf("Move(%v) = %v, want playing", d, got)
		}
	}

	if w.Player() != (Coord{0, 0}) {
		t.Errorf("Player() = %v, want (0,0)", w.Player())
	}
	if w.ContentAt(Coord{0, 0}) != ContentPlayer {
		t.Errorf("ContentAt(0,0) = %v, want player", w.ContentAt(Coord{0, 0}))
	}
	if w.Moves() != 0 {
		t.Errorf("Moves() = %d, want 0", w.Moves())
	}
}

func TestMoveOntoSafeCell(t *testing.T) {
	w := mustLayout(t, 4, scenarioLayout())

	if got := w.Move(Right); got != StatusPlaying {
		t.Fatalf("Move(right) = %v, want playing", got)
	}
	if w.Player() != (Coord{0, 1}) {
		t.Errorf("Player() = %v, want (0,1)", w.Player())
	}
	if w.ContentAt(Coord{0, 0}) != ContentEmpty {
		t.Errorf("old cell = %v, want empty", w.ContentAt(Coord{0, 0}))
	}
	if w.ContentAt(Coord{0, 1}) != ContentPlayer {
		t.Errorf("new cell = %v, want player", w.ContentAt(Coord{0, 1}))
	}
	if !w.Visited(Coord{0, 1}) || !w.Visited(Coord{0, 0}) {
		t.Error("both the start cell and the entered cell should be visited")
	}
	if w.Moves() != 1 {
		t.Errorf("Moves() = %d, want 1", w.Moves())
	}
}

func TestMoveTerminal(t *testing.T) {
	tests := []struct {
		name   string
		layout Layout
		path   []Direction
		want   Status
		entry  Coord
	}{
		{
			name:   "gold",
			layout: Layout{Start: Coord{0, 0}, Wumpus: Coord{3, 3}, Gold: Coord{1, 2}, Pits: []Coord{{3, 0}}},
			path:   []Direction{Down, Right, Right},
			want:   StatusWon,
			entry:  Coord{1, 2},
		},
		{
			name:   "pit",
			layout: scenarioLayout(),
			path:   []Direction{Right, Down},
			want:   StatusLostToPit,
			entry:  Coord{1, 1},
		},
		{
			name:   "wumpus",
			layout: Layout{Start: Coord{0, 0}, Wumpus: Coord{0, 2}, Gold: Coord{3, 3}},
			path:   []Direction{Right, Right},
			want:   StatusLostToWumpus,
			entry:  Coord{0, 2},
		},
	}

	for _, tt := range tests {
		w := mustLayout(t, 4, tt.layout)
		entered := w.ContentAt(tt.entry)

		var got Status
		for _, d := range tt.path {
			got = w.Move(d)
		}
		if got != tt.want {
			t.Fatalf("%s: final Move() = %v, want %v", tt.name, got, tt.want)
		}

		if w.ContentAt(tt.entry) != entered {
			t.Errorf("%s: entered cell = %v, want %v unchanged", tt.name, w.ContentAt(tt.entry), entered)
		}
		if w.Player() != tt.entry {
			t.Errorf("%s: Player() = %v, want %v", tt.name, w.Player(), tt.entry)
		}
		for r := 0; r < 4; r++ {
			for c := 0; c < 4; c++ {
				if w.ContentAt(Coord{r, c}) == ContentPlayer {
					t.Errorf("%s: player token still on the board at (%d,%d)", tt.name, r, c)
				}
			}
		}

		before := w.Snapshot()
		for _, d := range AllDirections() {
			if got := w.Move(d); got != tt.want {
				t.Errorf("%s: Move(%v) after game over = %v, want %v", tt.name, d, got, tt.want)
			}
		}
		if !reflect.DeepEqual(before, w.Snapshot()) {
			t.Errorf("%s: moves after game over changed the board", tt.name)
		}
	}
}

func TestMoveNeverUnmarksVisited(t *testing.T) {
	w, err := New(context.Background(), 8, 4, rand.New(rand.NewSource(99)))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	rng := rand.New(rand.NewSource(3))
	seen := map[Coord]bool{w.Player(): true}
	for i := 0; i < 200 && w.Status() == StatusPlaying; i++ {
		w.Move(Direction(rng.Intn(4)))
		if w.Status() == StatusPlaying {
			seen[w.Player()] = true
		}
		for pos := range seen {
			if !w.Visited(pos) {
				t.Fatalf("step %d: %v lost its visited mark", i, pos)
			}
		}
	}
}

func TestMoveInvalidDirection(t *testing.T) {
	w := mustLayout(t, 4, scenarioLayout())
	if got := w.Move(Direction(42)); got != StatusPlaying {
		t.Errorf("Move(42) = %v, want playing", got)
	}
	if w.Player() != (Coord{0, 0}) {
		t.Errorf("Player() = %v, want (0,0)", w.Player())
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	w := mustLayout(t, 4, scenarioLayout())
	s := w.Snapshot()

	s.Cells[3][3] = ContentEmpty
	s.Hints[0][1] = HintNone
	s.Visited[2][2] = true

	if w.ContentAt(Coord{3, 3}) != ContentWumpus {
		t.Error("changing the snapshot's cells changed the world")
	}
	if w.HintAt(Coord{0, 1}) != HintBreeze {
		t.Error("changing the snapshot's hints changed the world")
	}
	if w.Visited(Coord{2, 2}) {
		t.Error("changing the snapshot's visited mask changed the world")
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status   Status
		expected string
		terminal bool
	}{
		{StatusPlaying, "playing", false},
		{StatusLostToWumpus, "lost_to_wumpus", true},
		{StatusLostToPit, "lost_to_pit", true},
		{StatusWon, "won", true},
		{Status(99), "unknown", true},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.expected {
			t.Errorf("Status(%d).String() = %q, want %q", tt.status, got, tt.expected)
		}
		if got := tt.status.IsTerminal(); got != tt.terminal {
			t.Errorf("Status(%d).IsTerminal() = %v, want %v", tt.status, got, tt.terminal)
		}
	}
}
