// Package game provides the main game loop and state management.
package game

// Phase represents what the game loop is waiting for.
type Phase int

const (
	// PhasePlaying accepts moves from the arrow keys.
	PhasePlaying Phase = iota
	// PhaseGameOver shows the revealed board until a key is pressed.
	PhaseGameOver
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
