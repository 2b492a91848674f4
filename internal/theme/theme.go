package theme

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/wumpus/internal/world"
)

// Palette holds hex colors for each kind of cell.
type Palette struct {
	Hidden  string `json:"hidden"`  // Unvisited cell
	Visited string `json:"visited"` // Visited cell with no hint
	Breeze  string `json:"breeze"`  // Visited cell next to a pit
	Stench  string `json:"stench"`  // Visited cell next to the Wumpus
	Both    string `json:"both"`    // Visited cell next to both
	Gold    string `json:"gold"`
	Player  string `json:"player"`
	Wumpus  string `json:"wumpus"`
	Pit     string `json:"pit"`
	Grid    string `json:"grid"` // Cell borders
	Text    string `json:"text"` // Status line
}

// Theme defines how the board is drawn.
type Theme struct {
	CellWidth  int               `json:"cellWidth"`  // Terminal columns per cell
	CellHeight int               `json:"cellHeight"` // Terminal rows per cell
	Colors     Palette           `json:"colors"`
	Glyphs     map[string]string `json:"glyphs"`   // Keyed by content or hint name
	Messages   map[string]string `json:"messages"` // Keyed by status name
}

// LoadTheme loads the theme from the embedded theme.json file.
func LoadTheme() (*Theme, error) {
	t, err := Load[Theme]("theme.json")
	if err != nil {
		return nil, err
	}
	if t.CellWidth < 3 || t.CellHeight < 1 {
		return nil, fmt.Errorf("theme cell size %dx%d is too small", t.CellWidth, t.CellHeight)
	}
	return &t, nil
}

// MustLoadTheme loads the theme, panicking on error.
func MustLoadTheme() *Theme {
	t, err := LoadTheme()
	if err != nil {
		panic(err)
	}
	return t
}

// Color returns the hex color as a tcell.Color, or white if it does not parse.
func (t *Theme) Color(hex string) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// CellColor returns the background color of a cell given what the player knows about it.
func (t *Theme) CellColor(visited bool, hint world.Hint) tcell.Color {
	if !visited {
		return t.Color(t.Colors.Hidden)
	}
	switch hint {
	case world.HintBoth:
		return t.Color(t.Colors.Both)
	case world.HintBreeze:
		return t.Color(t.Colors.Breeze)
	case world.HintStench:
		return t.Color(t.Colors.Stench)
	default:
		return t.Color(t.Colors.Visited)
	}
}

// ContentColor returns the foreground color of an object on the board.
func (t *Theme) ContentColor(c world.Content) tcell.Color {
	switch c {
	case world.ContentPlayer:
		return t.Color(t.Colors.Player)
	case world.ContentWumpus:
		return t.Color(t.Colors.Wumpus)
	case world.ContentPit:
		return t.Color(t.Colors.Pit)
	case world.ContentGold:
		return t.Color(t.Colors.Gold)
	default:
		return t.Color(t.Colors.Text)
	}
}

// Glyph returns the first character of the named glyph, or '?' if none is defined.
func (t *Theme) Glyph(name string) rune {
	g := t.Glyphs[name]
	if len(g) == 0 {
		return '?'
	}
	return []rune(g)[0]
}

// Message returns the text shown for the given status.
func (t *Theme) Message(s world.Status) string {
	if msg, ok := t.Messages[s.String()]; ok {
		return msg
	}
	return s.String()
}
