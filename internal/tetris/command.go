package tetris

import "fmt"

// Command is a player action on the active piece.
type Command int

const (
	MoveLeft Command = iota
	MoveRight
	SoftDrop
	HardDrop
	RotateCW
)

// String returns a human readable command name.
func (c Command) String() string {
	switch c {
	case MoveLeft:
		return "move-left"
	case MoveRight:
		return "move-right"
	case SoftDrop:
		return "soft-drop"
	case HardDrop:
		return "hard-drop"
	case RotateCW:
		return "rotate"
	default:
		return fmt.Sprintf("Command(%d)", int(c))
	}
}

// Outcome is the result of applying a command to a piece.
type Outcome struct {
	// Committed is false when the command was rejected; Piece is then the
	// unchanged input.
	Committed bool
	Piece     Piece
	// Steps is the number of rows descended by SoftDrop (1) or HardDrop.
	Steps int
}

// Execute computes the candidate position for cmd, validates it against the
// board and reports whether it is accepted. The board is never modified.
//
// HardDrop descends while the next row is valid and is rejected only when
// the piece cannot move down at all. The piece is not locked; gravity or a
// following soft drop freezes it.
func Execute(cmd Command, active Piece, board *Board) Outcome {
	rejected := Outcome{Piece: active}

	if cmd == HardDrop {
		p := active
		steps := 0
		for {
			next := p.Moved(0, 1)
			if !Valid(next, board) {
				break
			}
			p = next
			steps++
		}
		if steps == 0 {
			return rejected
		}
		return Outcome{Committed: true, Piece: p, Steps: steps}
	}

	var candidate Piece
	steps := 0
	switch cmd {
	case MoveLeft:
		candidate = active.Moved(-1, 0)
	case MoveRight:
		candidate = active.Moved(1, 0)
	case SoftDrop:
		candidate = active.Moved(0, 1)
		steps = 1
	case RotateCW:
		candidate = Rotate(active)
	default:
		return rejected
	}

	if !Valid(candidate, board) {
		return rejected
	}
	return Outcome{Committed: true, Piece: candidate, Steps: steps}
}
