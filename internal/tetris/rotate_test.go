package tetris_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

func TestRotateClockwise(t *testing.T) {
	tests := []struct {
		typ  tetris.PieceType
		want tetris.Shape
	}{
		{tetris.PieceT, tetris.Shape{
			{0, 6, 0},
			{0, 6, 6},
			{0, 6, 0},
		}},
		{tetris.PieceI, tetris.Shape{
			{0, 0, 1, 0},
			{0, 0, 1, 0},
			{0, 0, 1, 0},
			{0, 0, 1, 0},
		}},
		{tetris.PieceJ, tetris.Shape{
			{0, 2, 2},
			{0, 2, 0},
			{0, 2, 0},
		}},
		{tetris.PieceO, tetris.Shape{{4, 4}, {4, 4}}},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			got := tetris.Rotate(tetris.NewPiece(tt.typ))
			assert.True(t, tt.want.Equal(got.Shape), "got %v", got.Shape)
		})
	}
}

func TestRotateKeepsPositionAndInput(t *testing.T) {
	p := at(tetris.PieceS, 2, 7)
	before := p.Shape.Clone()

	r := tetris.Rotate(p)
	assert.Equal(t, 2, r.X)
	assert.Equal(t, 7, r.Y)
	assert.True(t, before.Equal(p.Shape), "input shape was modified")
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for _, typ := range allTypes {
		p := tetris.NewPiece(typ)
		r := p
		for range 4 {
			r = tetris.Rotate(r)
		}
		assert.True(t, p.Shape.Equal(r.Shape), typ.String())
	}
}

func TestRotateRejectedAtWall(t *testing.T) {
	b := tetris.NewBoard()
	vertical := tetris.Rotate(tetris.NewPiece(tetris.PieceI))
	vertical.X = -2
	require.True(t, tetris.Valid(vertical, &b), "vertical I against the left wall")

	out := tetris.Execute(tetris.RotateCW, vertical, &b)
	assert.False(t, out.Committed)
	assert.True(t, vertical.Shape.Equal(out.Piece.Shape))
}
