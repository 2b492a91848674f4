package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/wumpus/internal/theme"
	"github.com/samdwyer/wumpus/internal/world"
)

// Renderer handles drawing the board to the screen.
type Renderer struct {
	screen *Screen
	theme  *theme.Theme
}

// NewRenderer creates a new renderer for the given screen and theme.
func NewRenderer(screen *Screen, th *theme.Theme) *Renderer {
	return &Renderer{screen: screen, theme: th}
}

// CellOrigin returns the top-left terminal position of a board cell.
// Cells are separated by one column and one row of grid lines.
func (r *Renderer) CellOrigin(c world.Coord) (x, y int) {
	return 1 + c.Col*(r.theme.CellWidth+1), 1 + c.Row*(r.theme.CellHeight+1)
}

// BoardSize returns the terminal width and height taken by a board, grid lines included.
func (r *Renderer) BoardSize(size int) (width, height int) {
	return 1 + size*(r.theme.CellWidth+1), 1 + size*(r.theme.CellHeight+1)
}

// Render draws the board and the status line. Once the game is over every
// cell is revealed.
func (r *Renderer) Render(s world.Snapshot) {
	r.screen.Clear()

	r.drawGrid(s.Size)
	for row := 0; row < s.Size; row++ {
		for col := 0; col < s.Size; col++ {
			r.drawCell(s, world.Coord{Row: row, Col: col})
		}
	}

	_, boardHeight := r.BoardSize(s.Size)
	r.RenderMessage(fmt.Sprintf("Moves: %d", s.Moves), boardHeight)
	r.RenderMessage(r.theme.Message(s.Status), boardHeight+1)
	if s.Status.IsTerminal() {
		r.RenderMessage("Press any key to exit", boardHeight+2)
	}

	r.screen.Show()
}

// RenderMessage displays a message at the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(r.theme.Color(r.theme.Colors.Text))
	x := 0
	for _, ch := range msg {
		r.screen.SetContent(x, y, ch, style)
		x++
	}
}

// drawGrid draws the border lines between cells.
func (r *Renderer) drawGrid(size int) {
	style := tcell.StyleDefault.Foreground(r.theme.Color(r.theme.Colors.Grid))
	width, height := r.BoardSize(size)
	stepX, stepY := r.theme.CellWidth+1, r.theme.CellHeight+1

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			onRow, onCol := y%stepY == 0, x%stepX == 0
			switch {
			case onRow && onCol:
				r.screen.SetContent(x, y, tcell.RunePlus, style)
			case onRow:
				r.screen.SetContent(x, y, tcell.RuneHLine, style)
			case onCol:
				r.screen.SetContent(x, y, tcell.RuneVLine, style)
			}
		}
	}
}

// drawCell fills one cell with its background color and centers its glyph.
func (r *Renderer) drawCell(s world.Snapshot, pos world.Coord) {
	reveal := s.Status.IsTerminal()
	bg := r.theme.CellColor(reveal || s.IsVisited(pos), s.HintAt(pos))
	glyph, fg := r.cellGlyph(s, pos, reveal)

	fill := tcell.StyleDefault.Background(bg)
	x0, y0 := r.CellOrigin(pos)
	for y := y0; y < y0+r.theme.CellHeight; y++ {
		for x := x0; x < x0+r.theme.CellWidth; x++ {
			r.screen.SetContent(x, y, ' ', fill)
		}
	}

	if glyph != ' ' {
		style := fill.Foreground(fg).Bold(true)
		if reveal && pos == s.Player {
			style = style.Reverse(true)
		}
		r.screen.SetContent(x0+r.theme.CellWidth/2, y0+r.theme.CellHeight/2, glyph, style)
	}
}

// cellGlyph returns what to show in the middle of a cell.
func (r *Renderer) cellGlyph(s world.Snapshot, pos world.Coord, reveal bool) (rune, tcell.Color) {
	content := s.ContentAt(pos)
	switch {
	case content == world.ContentPlayer:
		return r.theme.Glyph(content.String()), r.theme.ContentColor(content)
	case reveal && content != world.ContentEmpty:
		return r.theme.Glyph(content.String()), r.theme.ContentColor(content)
	case (reveal || s.IsVisited(pos)) && s.HintAt(pos) != world.HintNone:
		return r.theme.Glyph(s.HintAt(pos).String()), r.theme.Color(r.theme.Colors.Text)
	default:
		return ' ', tcell.ColorDefault
	}
}
