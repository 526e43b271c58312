// Package tetris implements the rules of the falling-block game: the board,
// piece generation, placement checks, rotation, line clearing, scoring and the
// clock-driven loop that sequences them.
//
// The package has no terminal dependencies. The host supplies time,
// scheduling, randomness and a render sink through the interfaces in host.go.
package tetris

import (
	"fmt"
	"strings"
)

// Board dimensions. The playfield size is fixed.
const (
	Rows = 20
	Cols = 10
)

// Cell is the content of one board square: Empty, or the type id (1..7) of
// the piece that was frozen there.
type Cell uint8

// Empty marks an unoccupied cell.
const Empty Cell = 0

// Board is the playfield, indexed [row][column] with row 0 at the top.
// It is a value type: assigning a Board copies every cell.
type Board [Rows][Cols]Cell

// NewBoard returns an empty board.
func NewBoard() Board {
	return Board{}
}

// InBounds reports whether (x, y) addresses a cell of the board.
func InBounds(x, y int) bool {
	return x >= 0 && x < Cols && y >= 0 && y < Rows
}

func mustInBounds(x, y int) {
	if !InBounds(x, y) {
		panic(fmt.Sprintf("tetris: board index (%d, %d) outside %dx%d", x, y, Cols, Rows))
	}
}

// At returns the cell at column x, row y. It panics if the position is
// outside the board.
func (b *Board) At(x, y int) Cell {
	mustInBounds(x, y)
	return b[y][x]
}

// Set writes a cell. It panics on an out-of-range position or cell value.
func (b *Board) Set(x, y int, c Cell) {
	mustInBounds(x, y)
	if c > Cell(PieceTypes) {
		panic(fmt.Sprintf("tetris: cell value %d outside [0,%d]", c, PieceTypes))
	}
	b[y][x] = c
}

// IsEmpty reports whether the cell at (x, y) is unoccupied.
func (b *Board) IsEmpty(x, y int) bool {
	return b.At(x, y) == Empty
}

// RowFull reports whether every cell in row y is occupied.
func (b *Board) RowFull(y int) bool {
	mustInBounds(0, y)
	for _, c := range b[y] {
		if c == Empty {
			return false
		}
	}
	return true
}

// Freeze writes the filled cells of p into the board at p's position.
// Callers check placement with Valid first; freezing a piece that reaches
// outside the board is a programming error and panics.
func (b *Board) Freeze(p Piece) {
	for _, pt := range p.Blocks() {
		b.Set(pt.X, pt.Y, p.Type.Cell())
	}
}

// Filled returns the number of occupied cells.
func (b Board) Filled() int {
	n := 0
	for y := range Rows {
		for x := range Cols {
			if b[y][x] != Empty {
				n++
			}
		}
	}
	return n
}

// String renders the board one row per line, '.' for empty cells and the
// type id otherwise. Used in test failure output.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow((Cols + 1) * Rows)
	for y := range Rows {
		for x := range Cols {
			if b[y][x] == Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + byte(b[y][x]))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
