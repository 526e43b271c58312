package tetris

// FullRows returns the indices of every full row, top to bottom.
func FullRows(b *Board) []int {
	var rows []int
	for y := range Rows {
		if b.RowFull(y) {
			rows = append(rows, y)
		}
	}
	return rows
}

// ClearLines removes every full row, shifts the rows above down to close the
// gaps and inserts empty rows at the top. It returns the number of rows
// removed (0..4 after a single freeze).
//
// Full rows are identified on the board as it was before any removal, so
// adjacent full rows are all cleared.
func ClearLines(b *Board) int {
	var full [Rows]bool
	cleared := 0
	for _, y := range FullRows(b) {
		full[y] = true
		cleared++
	}
	if cleared == 0 {
		return 0
	}

	var next Board
	dst := Rows - 1
	for y := Rows - 1; y >= 0; y-- {
		if full[y] {
			continue
		}
		next[dst] = b[y]
		dst--
	}
	*b = next
	return cleared
}
