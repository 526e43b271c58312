package core

// Action is a semantic input, abstracted from physical key presses.
type Action int

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionSoftDrop
	ActionHardDrop
	ActionRotate
	ActionStart // start a new game, or restart after game over
	ActionPause
	ActionHelp
	ActionQuit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionHardDrop:
		return "HardDrop"
	case ActionRotate:
		return "Rotate"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
