package tetris

// Valid reports whether every filled cell of p lies on the board and over an
// empty cell. A cell is on the board when 0 <= x < Cols and 0 <= y < Rows;
// cells above the top edge count as out of bounds.
func Valid(p Piece, b *Board) bool {
	for _, pt := range p.Blocks() {
		if !InBounds(pt.X, pt.Y) || b[pt.Y][pt.X] != Empty {
			return false
		}
	}
	return true
}
