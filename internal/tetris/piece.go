package tetris

import "fmt"

// PieceType identifies one of the seven tetrominoes. The value doubles as the
// cell id written into the board when the piece freezes.
type PieceType uint8

const (
	PieceI PieceType = iota + 1
	PieceJ
	PieceL
	PieceO
	PieceS
	PieceT
	PieceZ
)

// PieceTypes is the number of distinct piece types.
const PieceTypes = 7

// Valid reports whether t is one of the seven piece types.
func (t PieceType) Valid() bool {
	return t >= PieceI && t <= PieceZ
}

// Cell returns the board cell value for t.
func (t PieceType) Cell() Cell {
	return Cell(t)
}

// String returns the conventional letter for the piece.
func (t PieceType) String() string {
	switch t {
	case PieceI:
		return "I"
	case PieceJ:
		return "J"
	case PieceL:
		return "L"
	case PieceO:
		return "O"
	case PieceS:
		return "S"
	case PieceT:
		return "T"
	case PieceZ:
		return "Z"
	default:
		return fmt.Sprintf("PieceType(%d)", uint8(t))
	}
}

// Shape is a square matrix of cells. Filled cells hold the piece's type id.
type Shape [][]Cell

// Size returns the side length of the bounding box.
func (s Shape) Size() int {
	return len(s)
}

// Clone returns a deep copy that shares no rows with s.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	out := make(Shape, len(s))
	for i, row := range s {
		out[i] = make([]Cell, len(row))
		copy(out[i], row)
	}
	return out
}

// Equal reports whether two shapes have identical dimensions and cells.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for y := range s {
		if len(s[y]) != len(other[y]) {
			return false
		}
		for x := range s[y] {
			if s[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// shapeTable holds the spawn orientation of every piece, indexed by type.
// Entries are never handed out directly; NewPiece clones them.
var shapeTable = [PieceTypes + 1]Shape{
	PieceI: {
		{0, 0, 0, 0},
		{1, 1, 1, 1},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	PieceJ: {
		{2, 0, 0},
		{2, 2, 2},
		{0, 0, 0},
	},
	PieceL: {
		{0, 0, 3},
		{3, 3, 3},
		{0, 0, 0},
	},
	PieceO: {
		{4, 4},
		{4, 4},
	},
	PieceS: {
		{0, 5, 5},
		{5, 5, 0},
		{0, 0, 0},
	},
	PieceT: {
		{0, 6, 0},
		{6, 6, 6},
		{0, 0, 0},
	},
	PieceZ: {
		{7, 7, 0},
		{0, 7, 7},
		{0, 0, 0},
	},
}

// SpawnShape returns a fresh copy of the spawn orientation for t.
func SpawnShape(t PieceType) Shape {
	mustValidType(t)
	return shapeTable[t].Clone()
}

func mustValidType(t PieceType) {
	if !t.Valid() {
		panic(fmt.Sprintf("tetris: piece type %d outside [1,%d]", uint8(t), PieceTypes))
	}
}

// Point is a board coordinate.
type Point struct {
	X, Y int
}

// Piece is a tetromino placed on the board. X and Y locate the top-left
// corner of the shape's bounding box in board coordinates.
type Piece struct {
	Type  PieceType
	Shape Shape
	X, Y  int
}

// NewPiece returns a piece of type t at its spawn position: top row, column 4
// for the O piece and column 3 for every other piece.
func NewPiece(t PieceType) Piece {
	x := 3
	if t == PieceO {
		x = 4
	}
	return Piece{
		Type:  t,
		Shape: SpawnShape(t),
		X:     x,
		Y:     0,
	}
}

// Clone returns a copy of p with its own shape rows.
func (p Piece) Clone() Piece {
	p.Shape = p.Shape.Clone()
	return p
}

// Moved returns a copy of p translated by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	c := p.Clone()
	c.X += dx
	c.Y += dy
	return c
}

// Blocks returns the board coordinates of every filled cell of p.
func (p Piece) Blocks() []Point {
	blocks := make([]Point, 0, 4)
	for dy, row := range p.Shape {
		for dx, c := range row {
			if c != Empty {
				blocks = append(blocks, Point{X: p.X + dx, Y: p.Y + dy})
			}
		}
	}
	return blocks
}

// IsZero reports whether p is the zero Piece (no game in progress).
func (p Piece) IsZero() bool {
	return p.Type == 0
}
