package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

func TestBoardViewPaintsFrozenCells(t *testing.T) {
	s := core.NewScreen(80, 24)
	v := &BoardView{}

	board := tetris.NewBoard()
	board.Set(0, 19, tetris.PieceZ.Cell())
	v.Draw(board, tetris.NewPiece(tetris.PieceT))
	v.DrawNext(tetris.NewPiece(tetris.PieceI))
	v.Paint(s, HUD{State: tetris.StateRunning, Interval: 880 * time.Millisecond})

	ox, oy := wellOrigin(s)
	cell := s.GetCell(ox+1, oy+1+19)
	if cell.Rune != '█' || cell.Color != core.ColorRed {
		t.Errorf("frozen Z cell = %+v, expected red block", cell)
	}

	// T spawns with its top cell at column 4, row 0.
	cell = s.GetCell(ox+1+4*cellW, oy+1)
	if cell.Rune != '█' || cell.Color != core.ColorMagenta {
		t.Errorf("active T cell = %+v, expected magenta block", cell)
	}

	if got := s.GetCell(ox, oy).Rune; got != '┌' {
		t.Errorf("well corner = %q, expected '┌'", got)
	}
	if !strings.Contains(screenText(s), "880ms") {
		t.Error("HUD should show the drop interval")
	}
	if v.Draws() != 1 {
		t.Errorf("Draws() = %d, expected 1", v.Draws())
	}
}

func TestBoardViewPreview(t *testing.T) {
	s := core.NewScreen(80, 24)
	v := &BoardView{}
	v.DrawNext(tetris.NewPiece(tetris.PieceO))
	v.Paint(s, HUD{State: tetris.StateRunning})

	ox, oy := wellOrigin(s)
	sx := ox + wellW + gap
	for _, pt := range []struct{ x, y int }{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		cell := s.GetCell(sx+1+pt.x*cellW, oy+2+pt.y)
		if cell.Color != core.ColorYellow {
			t.Errorf("preview cell %v = %+v, expected yellow", pt, cell)
		}
	}
}

func TestBoardViewOverlays(t *testing.T) {
	tests := []struct {
		name string
		hud  HUD
		want string
	}{
		{"not started", HUD{State: tetris.StateNotStarted}, "press enter"},
		{"paused", HUD{State: tetris.StateRunning, Paused: true}, "PAUSED"},
		{"game over", HUD{State: tetris.StateGameOver}, "GAME OVER"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := core.NewScreen(80, 24)
			(&BoardView{}).Paint(s, tt.hud)
			if !strings.Contains(screenText(s), tt.want) {
				t.Errorf("screen should contain %q:\n%s", tt.want, screenText(s))
			}
		})
	}
}

func TestCellColor(t *testing.T) {
	tests := []struct {
		typ  tetris.PieceType
		want core.Color
	}{
		{tetris.PieceI, core.ColorCyan},
		{tetris.PieceJ, core.ColorBlue},
		{tetris.PieceL, core.ColorOrange},
		{tetris.PieceO, core.ColorYellow},
		{tetris.PieceS, core.ColorGreen},
		{tetris.PieceT, core.ColorMagenta},
		{tetris.PieceZ, core.ColorRed},
	}
	for _, tt := range tests {
		if got := CellColor(tt.typ.Cell()); got != tt.want {
			t.Errorf("CellColor(%s) = %v, expected %v", tt.typ, got, tt.want)
		}
	}
	if CellColor(tetris.Empty) != core.ColorDefault {
		t.Error("empty cell should have the default color")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawText(0, 0, "plain")
	s.DrawTextColored(6, 0, "red", core.ColorRed)
	s.DrawTextColored(0, 1, "cyan", core.ColorCyan)

	out := RenderScreen(s)
	for _, want := range []string{"plain", "red", "cyan"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered output missing %q: %q", want, out)
		}
	}
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("expected 2 lines, got %d newlines", got)
	}
}

func TestBoardViewTooSmall(t *testing.T) {
	s := core.NewScreen(30, 10)
	v := &BoardView{}
	v.Draw(tetris.NewBoard(), tetris.NewPiece(tetris.PieceT))
	v.Paint(s, HUD{State: tetris.StateRunning})

	out := screenText(s)
	if !strings.Contains(out, "too small") {
		t.Errorf("small screen should show a resize hint:\n%s", out)
	}
	if strings.Contains(out, "┌") {
		t.Error("small screen should not draw the well")
	}
}

func TestOverlayBlanksBand(t *testing.T) {
	s := core.NewScreen(80, 24)
	v := &BoardView{}
	board := tetris.NewBoard()
	for y := range tetris.Rows {
		for x := range tetris.Cols {
			board.Set(x, y, tetris.PieceZ.Cell())
		}
	}
	v.Draw(board, tetris.Piece{})
	v.Paint(s, HUD{State: tetris.StateGameOver})

	ox, oy := wellOrigin(s)
	cy := oy + 1 + (wellH-2)/2
	if got := s.GetCell(ox+1, cy).Rune; got != ' ' {
		t.Errorf("overlay band at the well edge = %q, expected blank", got)
	}
	if got := s.GetCell(ox+1, oy+1).Rune; got != '█' {
		t.Errorf("cells outside the band = %q, expected block", got)
	}
}

// screenText returns the screen's runes, one line per row.
func screenText(s *core.Screen) string {
	var sb strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range s.Width() {
			sb.WriteRune(s.GetCell(x, y).Rune)
		}
	}
	return sb.String()
}
