package tetris

// Rotate returns a copy of p with its shape turned 90 degrees clockwise
// inside the same bounding box. The position is unchanged and there are no
// wall kicks: callers validate the result and keep the original if it does
// not fit.
//
// The new row r is old column r read bottom to top, i.e. the matrix is
// transposed and then every row reversed.
func Rotate(p Piece) Piece {
	n := p.Shape.Size()
	rotated := make(Shape, n)
	for r := range n {
		rotated[r] = make([]Cell, n)
		for c := range n {
			rotated[r][c] = p.Shape[n-1-c][r]
		}
	}
	p.Shape = rotated
	return p
}
