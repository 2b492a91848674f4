package game

import (
	"context"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/wumpus/internal/telemetry"
	"github.com/samdwyer/wumpus/internal/theme"
	"github.com/samdwyer/wumpus/internal/ui"
	"github.com/samdwyer/wumpus/internal/world"
)

// Game holds the entire game state.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	theme    *theme.Theme
	world    *world.World
	tracer   trace.Tracer
	phase    Phase
	running  bool
}

// New builds the board from cfg and opens the terminal screen.
func New(ctx context.Context, cfg Config) (*Game, error) {
	w, th, err := setup(ctx, cfg)
	if err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return newGame(cfg, w, th, screen), nil
}

// setup builds the board and loads the theme before the terminal is taken
// over, so configuration errors print normally.
func setup(ctx context.Context, cfg Config) (*world.World, *theme.Theme, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	w, err := world.New(ctx, cfg.GridSize, cfg.PitCount, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, nil, err
	}
	th, err := theme.LoadTheme()
	if err != nil {
		return nil, nil, err
	}

	log.Info().
		Int64("seed", seed).
		Int("grid_size", cfg.GridSize).
		Int("pit_count", cfg.PitCount).
		Stringer("start", w.Player()).
		Msg("board generated")
	return w, th, nil
}

func newGame(cfg Config, w *world.World, th *theme.Theme, screen *ui.Screen) *Game {
	tracer := telemetry.NoopTracer()
	if cfg.Telemetry {
		tracer = telemetry.Tracer("game")
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, th),
		theme:    th,
		world:    w,
		tracer:   tracer,
		phase:    PhasePlaying,
		running:  true,
	}
}

// Run executes the main game loop until the player quits or dismisses the
// game over screen. It closes the screen before returning.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	for g.running {
		if err := ctx.Err(); err != nil {
			return err
		}

		g.renderer.Render(g.world.Snapshot())

		// Handle input (blocking)
		g.handleInput(ctx)
	}

	log.Info().
		Str("status", g.world.Status().String()).
		Int("moves", g.world.Moves()).
		Msg("session ended")
	return nil
}

// Status returns the outcome of the game so far.
func (g *Game) Status() world.Status {
	return g.world.Status()
}

// Message returns the themed text for the current status.
func (g *Game) Message() string {
	return g.theme.Message(g.world.Status())
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKey(ctx, ev.Key(), ev.Rune())
	case *tcell.EventResize:
		g.screen.Sync()
	case nil:
		// Screen finalized
		g.running = false
	}
}

// handleKey processes keyboard input.
func (g *Game) handleKey(ctx context.Context, key tcell.Key, r rune) {
	if g.phase == PhaseGameOver {
		g.running = false
		return
	}

	if isQuitKey(key, r) {
		log.Info().Msg("player quit")
		g.running = false
		return
	}
	if d, ok := directionForKey(key, r); ok {
		g.tryMove(ctx, d)
	}
}

// tryMove moves the player and ends play once the status is terminal.
func (g *Game) tryMove(ctx context.Context, d world.Direction) {
	_, span := g.tracer.Start(ctx, "game.move")
	defer span.End()

	from := g.world.Player()
	status := g.world.Move(d)
	to := g.world.Player()

	span.SetAttributes(
		attribute.String("move.direction", d.String()),
		attribute.String("move.from", from.String()),
		attribute.String("move.to", to.String()),
		attribute.String("game.status", status.String()),
	)
	log.Debug().
		Stringer("direction", d).
		Stringer("from", from).
		Stringer("to", to).
		Stringer("status", status).
		Msg("move")

	if status.IsTerminal() {
		g.phase = PhaseGameOver
		log.Info().
			Stringer("status", status).
			Stringer("cell", to).
			Int("moves", g.world.Moves()).
			Msg("game over")
	}
}

// isQuitKey returns true for the keys that abandon the game.
func isQuitKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return r == 'q' || r == 'Q'
	}
	return false
}

// directionForKey maps arrow keys and WASD to moves.
func directionForKey(key tcell.Key, r rune) (world.Direction, bool) {
	switch key {
	case tcell.KeyUp:
		return world.Up, true
	case tcell.KeyDown:
		return world.Down, true
	case tcell.KeyLeft:
		return world.Left, true
	case tcell.KeyRight:
		return world.Right, true
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return world.Up, true
		case 's', 'S':
			return world.Down, true
		case 'a', 'A':
			return world.Left, true
		case 'd', 'D':
			return world.Right, true
		}
	}
	return 0, false
}
