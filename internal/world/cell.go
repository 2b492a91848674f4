// Package world provides the Wumpus World board: placement, hints and movement.
package world

// Content represents what occupies a single grid cell.
type Content rune

const (
	// ContentEmpty is a cell with nothing on it.
	ContentEmpty Content = ' '
	// ContentPlayer marks the player's current cell.
	ContentPlayer Content = 'A'
	// ContentWumpus is the monster. Entering it loses the game.
	ContentWumpus Content = 'W'
	// ContentPit is a bottomless pit. Entering it loses the game.
	ContentPit Content = 'P'
	// ContentGold wins the game when entered.
	ContentGold Content = 'G'
)

// String returns a human-readable content name.
func (c Content) String() string {
	switch c {
	case ContentEmpty:
		return "empty"
	case ContentPlayer:
		return "player"
	case ContentWumpus:
		return "wumpus"
	case ContentPit:
		return "pit"
	case ContentGold:
		return "gold"
	default:
		return "unknown"
	}
}

// Hint is the proximity warning attached to a cell.
// It is a bit set so that combining hints saturates.
type Hint uint8

const (
	HintNone   Hint = 0
	HintBreeze Hint = 1 << 0
	HintStench Hint = 1 << 1
	HintBoth        = HintBreeze | HintStench
)

// With returns the hint combined with another. Combining never drops a tag.
func (h Hint) With(other Hint) Hint {
	return h | other
}

// String returns a human-readable hint name.
func (h Hint) String() string {
	switch h {
	case HintNone:
		return "none"
	case HintBreeze:
		return "breeze"
	case HintStench:
		return "stench"
	case HintBoth:
		return "both"
	default:
		return "unknown"
	}
}
