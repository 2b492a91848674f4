package world

// Status is the game outcome so far.
type Status int

const (
	// StatusPlaying is the only non-terminal status.
	StatusPlaying Status = iota
	// StatusLostToWumpus means the player walked into the Wumpus.
	StatusLostToWumpus
	// StatusLostToPit means the player fell into a pit.
	StatusLostToPit
	// StatusWon means the player found the gold.
	StatusWon
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusLostToWumpus:
		return "lost_to_wumpus"
	case StatusLostToPit:
		return "lost_to_pit"
	case StatusWon:
		return "won"
	default:
		return "unknown"
	}
}

// IsTerminal returns true once the game has ended.
func (s Status) IsTerminal() bool {
	return s != StatusPlaying
}

// statusFor returns the status reached by entering a cell with the given content.
func statusFor(c Content) Status {
	switch c {
	case ContentWumpus:
		return StatusLostToWumpus
	case ContentPit:
		return StatusLostToPit
	case ContentGold:
		return StatusWon
	default:
		return StatusPlaying
	}
}
