package world

import "errors"

var (
	// ErrInvalidConfiguration is returned when the grid is too small or holds
	// too many objects to keep them all outside the safe zone.
	ErrInvalidConfiguration = errors.New("invalid world configuration")
	// ErrPlacementExhausted is returned when no empty cell outside the safe
	// zone is left for an object.
	ErrPlacementExhausted = errors.New("no free cell left for placement")
)
