package tetris

// EventKind identifies a notable state change.
type EventKind int

const (
	EventStarted EventKind = iota
	EventLinesCleared
	EventLevelUp
	EventGameOver
	EventPaused
	EventResumed
	EventStopped
)

// String returns the event name used in logs.
func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventLinesCleared:
		return "lines-cleared"
	case EventLevelUp:
		return "level-up"
	case EventGameOver:
		return "game-over"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Event records a state change for the host to log or display.
// Score and Level are the session values after the change.
type Event struct {
	Kind   EventKind
	Lines  int // rows cleared, for EventLinesCleared
	Points int // points awarded, for EventLinesCleared
	Score  int
	Level  int
}
