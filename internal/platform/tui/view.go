package tui

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Layout constants. Each board cell is two characters wide.
const (
	cellW    = 2
	wellW    = tetris.Cols*cellW + 2
	wellH    = tetris.Rows + 2
	previewW = 4*cellW + 2
	previewH = 4 + 2
	gap      = 2
	layoutW  = wellW + gap + previewW + 4
)

var pieceColors = [tetris.PieceTypes + 1]core.Color{
	tetris.PieceI: core.ColorCyan,
	tetris.PieceJ: core.ColorBlue,
	tetris.PieceL: core.ColorOrange,
	tetris.PieceO: core.ColorYellow,
	tetris.PieceS: core.ColorGreen,
	tetris.PieceT: core.ColorMagenta,
	tetris.PieceZ: core.ColorRed,
}

// CellColor returns the display color of a board cell.
func CellColor(c tetris.Cell) core.Color {
	if int(c) < len(pieceColors) {
		return pieceColors[c]
	}
	return core.ColorDefault
}

// HUD is the status shown beside the well.
type HUD struct {
	State    tetris.State
	Paused   bool
	Session  tetris.Session
	Interval time.Duration
}

// BoardView is the loop's render sink. It keeps the latest frame and paints
// it into a screen buffer on demand.
type BoardView struct {
	board  tetris.Board
	active tetris.Piece
	next   tetris.Piece
	draws  int
}

// Ensure BoardView implements Renderer
var _ tetris.Renderer = (*BoardView)(nil)

// Draw records the board and active piece.
func (v *BoardView) Draw(board tetris.Board, active tetris.Piece) {
	v.board = board
	v.active = active
	v.draws++
}

// DrawNext records the preview piece.
func (v *BoardView) DrawNext(next tetris.Piece) {
	v.next = next
}

// Draws returns how many frames the loop has rendered.
func (v *BoardView) Draws() int {
	return v.draws
}

// wellOrigin returns the top-left corner of the well's border on s.
func wellOrigin(s *core.Screen) (int, int) {
	return max(0, (s.Width()-layoutW)/2), max(0, (s.Height()-wellH)/2)
}

// Paint draws the well, preview and HUD into s. A screen too small for the
// layout shows only a resize hint.
func (v *BoardView) Paint(s *core.Screen, hud HUD) {
	s.Clear()
	if s.Width() < layoutW || s.Height() < wellH {
		s.DrawTextCentered(s.Height()/2, fmt.Sprintf("terminal too small, need %dx%d", layoutW, wellH))
		return
	}
	ox, oy := wellOrigin(s)

	s.DrawBox(core.NewRect(ox, oy, wellW, wellH), core.ColorGray)
	for y := range tetris.Rows {
		for x := range tetris.Cols {
			paintCell(s, ox+1+x*cellW, oy+1+y, v.board[y][x])
		}
	}

	started := hud.State != tetris.StateNotStarted
	if started && !v.active.IsZero() {
		for _, pt := range v.active.Blocks() {
			if tetris.InBounds(pt.X, pt.Y) {
				paintCell(s, ox+1+pt.X*cellW, oy+1+pt.Y, v.active.Type.Cell())
			}
		}
	}

	sx := ox + wellW + gap
	s.DrawTextColored(sx, oy, "NEXT", core.ColorBrightWhite)
	s.DrawBox(core.NewRect(sx, oy+1, previewW, previewH), core.ColorGray)
	if started && !v.next.IsZero() {
		for _, pt := range v.next.Blocks() {
			// Blocks are in board coordinates; shift back to the shape origin.
			px, py := pt.X-v.next.X, pt.Y-v.next.Y
			paintCell(s, sx+1+px*cellW, oy+2+py, v.next.Type.Cell())
		}
	}

	hy := oy + previewH + 2
	stats := []struct {
		label, value string
	}{
		{"SCORE", fmt.Sprintf("%d", hud.Session.Points)},
		{"LINES", fmt.Sprintf("%d", hud.Session.TotalLines)},
		{"LEVEL", fmt.Sprintf("%d", hud.Session.Level)},
		{"SPEED", fmt.Sprintf("%dms", hud.Interval.Milliseconds())},
	}
	for i, st := range stats {
		s.DrawTextColored(sx, hy+i*2, st.label, core.ColorGray)
		s.DrawTextColored(sx, hy+i*2+1, st.value, core.ColorBrightWhite)
	}

	switch {
	case hud.State == tetris.StateNotStarted:
		overlay(s, ox, oy, "TETRIS", "press enter")
	case hud.State == tetris.StateGameOver:
		overlay(s, ox, oy, "GAME OVER", "enter to restart")
	case hud.Paused:
		overlay(s, ox, oy, "PAUSED", "p to resume")
	}
}

func paintCell(s *core.Screen, x, y int, c tetris.Cell) {
	if c == tetris.Empty {
		s.SetColored(x, y, ' ', core.ColorGray)
		s.SetColored(x+1, y, '.', core.ColorGray)
		return
	}
	color := CellColor(c)
	s.SetColored(x, y, '█', color)
	s.SetColored(x+1, y, '█', color)
}

// overlay centers a title and hint in the middle of the well on a blanked
// band.
func overlay(s *core.Screen, ox, oy int, title, hint string) {
	inner := core.NewRect(ox+1, oy+1, wellW-2, wellH-2)
	cx, cy := inner.Center()
	s.DrawRect(core.NewRect(inner.X, cy-2, inner.W, 4), ' ')
	for _, line := range []struct {
		text  string
		y     int
		color core.Color
	}{
		{title, cy - 1, core.ColorBrightRed},
		{hint, cy, core.ColorWhite},
	} {
		x := max(inner.X, cx-len([]rune(line.text))/2)
		s.DrawTextColored(x, line.y, line.text, line.color)
	}
}
