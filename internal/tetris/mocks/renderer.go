package mocks

import "github.com/vovakirdan/tui-tetris/internal/tetris"

// RecordingRenderer keeps the last frame it was given
type RecordingRenderer struct {
	Board  tetris.Board
	Active tetris.Piece
	Next   tetris.Piece
	Draws  int
}

// Ensure RecordingRenderer implements Renderer
var _ tetris.Renderer = (*RecordingRenderer)(nil)

// Draw records the board and active piece
func (r *RecordingRenderer) Draw(board tetris.Board, active tetris.Piece) {
	r.Board = board
	r.Active = active
	r.Draws++
}

// DrawNext records the preview piece
func (r *RecordingRenderer) DrawNext(next tetris.Piece) {
	r.Next = next
}
