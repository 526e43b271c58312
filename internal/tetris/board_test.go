package tetris_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

func TestNewBoardIsEmpty(t *testing.T) {
	b := tetris.NewBoard()
	assert.Equal(t, 0, b.Filled())
	for y := range tetris.Rows {
		for x := range tetris.Cols {
			require.True(t, b.IsEmpty(x, y), "cell (%d, %d)", x, y)
		}
	}
}

func TestBoardIndexOutOfRangePanics(t *testing.T) {
	b := tetris.NewBoard()

	tests := []struct {
		name string
		x, y int
	}{
		{"left", -1, 0},
		{"right", tetris.Cols, 0},
		{"above", 0, -1},
		{"below", 0, tetris.Rows},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Panics(t, func() { b.At(tt.x, tt.y) })
			assert.Panics(t, func() { b.Set(tt.x, tt.y, 1) })
		})
	}
}

func TestBoardSetRejectsUnknownCellValue(t *testing.T) {
	b := tetris.NewBoard()
	assert.Panics(t, func() { b.Set(0, 0, tetris.Cell(tetris.PieceTypes+1)) })
	assert.NotPanics(t, func() { b.Set(0, 0, tetris.Cell(tetris.PieceTypes)) })
}

func TestBoardFreeze(t *testing.T) {
	b := tetris.NewBoard()
	b.Freeze(tetris.NewPiece(tetris.PieceO))

	want := map[tetris.Point]bool{{X: 4, Y: 0}: true, {X: 5, Y: 0}: true, {X: 4, Y: 1}: true, {X: 5, Y: 1}: true}
	for y := range tetris.Rows {
		for x := range tetris.Cols {
			if want[tetris.Point{X: x, Y: y}] {
				assert.Equal(t, tetris.PieceO.Cell(), b.At(x, y), "cell (%d, %d)", x, y)
			} else {
				assert.True(t, b.IsEmpty(x, y), "cell (%d, %d) should be empty", x, y)
			}
		}
	}
}

func TestBoardFreezeOutsidePanics(t *testing.T) {
	b := tetris.NewBoard()
	p := tetris.NewPiece(tetris.PieceO).Moved(0, -1)
	assert.Panics(t, func() { b.Freeze(p) })
}

func TestBoardRowFull(t *testing.T) {
	b := tetris.NewBoard()
	for x := range tetris.Cols - 1 {
		b.Set(x, 19, 1)
	}
	assert.False(t, b.RowFull(19))
	b.Set(tetris.Cols-1, 19, 1)
	assert.True(t, b.RowFull(19))
}

func TestBoardIsValueType(t *testing.T) {
	b := tetris.NewBoard()
	c := b
	c.Set(0, 0, 3)
	assert.True(t, b.IsEmpty(0, 0))
}
