package tetris

import (
	"fmt"
	"time"
)

// State is the lifecycle state of a Loop.
type State int

const (
	StateNotStarted State = iota
	StateRunning
	StateGameOver
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not-started"
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game-over"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Result describes what a command did.
type Result struct {
	Command   Command
	Committed bool
	// Locked is set when a rejected soft drop froze the active piece.
	Locked bool
	Steps  int
	Points int
}

// Loop sequences a single game: gravity ticks, player commands, freezing,
// line clears, scoring and game over.
//
// A Loop is not safe for concurrent use. The host must call Tick and Handle
// from one goroutine, one at a time.
type Loop struct {
	rules     Rules
	clock     Clock
	scheduler Scheduler
	renderer  Renderer
	factory   *Factory

	state  State
	paused bool

	board   Board
	active  Piece
	next    Piece
	session Session

	interval time.Duration
	lastDrop time.Time
	frames   uint64

	events []Event
}

// NewLoop creates a loop in the NotStarted state.
func NewLoop(host Host, rules Rules) (*Loop, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if host.Random == nil {
		return nil, fmt.Errorf("tetris: loop: nil random source")
	}
	if host.Clock == nil {
		host.Clock = SystemClock{}
	}
	if host.Scheduler == nil {
		host.Scheduler = nopScheduler{}
	}
	if host.Renderer == nil {
		host.Renderer = nopRenderer{}
	}
	return &Loop{
		rules:     rules,
		clock:     host.Clock,
		scheduler: host.Scheduler,
		renderer:  host.Renderer,
		factory:   NewFactory(host.Random, rules.Randomizer),
		interval:  rules.DropInterval(0),
	}, nil
}

// Start begins a new game from any state. Any scheduled frame is cancelled
// before the board and session are reset.
func (l *Loop) Start() {
	l.scheduler.Cancel()

	l.board = NewBoard()
	l.session = Session{}
	l.interval = l.rules.DropInterval(0)
	l.active = l.factory.Next()
	l.next = l.factory.Next()
	l.lastDrop = l.clock.Now()
	l.frames = 0
	l.paused = false
	l.state = StateRunning

	l.emit(EventStarted, 0, 0)
	l.render()
	l.scheduler.Schedule()
}

// Stop cancels any scheduled frame and returns to NotStarted.
func (l *Loop) Stop() {
	l.scheduler.Cancel()
	if l.state == StateNotStarted {
		return
	}
	l.state = StateNotStarted
	l.paused = false
	l.emit(EventStopped, 0, 0)
}

// Pause suspends gravity and commands while running.
func (l *Loop) Pause() {
	if l.state != StateRunning || l.paused {
		return
	}
	l.paused = true
	l.scheduler.Cancel()
	l.emit(EventPaused, 0, 0)
}

// Resume continues a paused game. The drop timer restarts from now.
func (l *Loop) Resume() {
	if l.state != StateRunning || !l.paused {
		return
	}
	l.paused = false
	l.lastDrop = l.clock.Now()
	l.session.SinceDrop = 0
	l.emit(EventResumed, 0, 0)
	l.scheduler.Schedule()
}

// TogglePause pauses a running game or resumes a paused one.
func (l *Loop) TogglePause() {
	if l.paused {
		l.Resume()
	} else {
		l.Pause()
	}
}

// Tick advances the game by one frame. When more than the current drop
// interval has passed since the last drop, the active piece falls one row,
// freezing if it cannot. Ticks outside a running, unpaused game are ignored.
func (l *Loop) Tick() {
	if l.state != StateRunning || l.paused {
		return
	}
	l.frames++

	now := l.clock.Now()
	l.session.SinceDrop = now.Sub(l.lastDrop)
	if l.session.SinceDrop > l.interval {
		l.lastDrop = now
		l.session.SinceDrop = 0
		l.drop()
	}

	l.render()
	if l.state == StateRunning {
		l.scheduler.Schedule()
	}
}

// Handle applies a player command. Commands are rejected unless the game is
// running and unpaused.
func (l *Loop) Handle(cmd Command) Result {
	res := Result{Command: cmd}
	if l.state != StateRunning || l.paused {
		return res
	}

	out := Execute(cmd, l.active, &l.board)
	res.Committed = out.Committed
	res.Steps = out.Steps

	switch {
	case out.Committed:
		l.active = out.Piece
		switch cmd {
		case SoftDrop:
			res.Points = l.session.AwardDrop(out.Steps, l.rules.SoftDropPoints)
		case HardDrop:
			res.Points = l.session.AwardDrop(out.Steps, l.rules.HardDropPoints)
		}
	case cmd == SoftDrop:
		l.lock()
		res.Locked = true
	default:
		return res
	}

	l.render()
	return res
}

// drop moves the active piece down one row, or locks it when blocked.
func (l *Loop) drop() {
	candidate := l.active.Moved(0, 1)
	if Valid(candidate, &l.board) {
		l.active = candidate
		return
	}
	l.lock()
}

// lock freezes the active piece, clears full rows, scores them and promotes
// the next piece, whose gravity timer starts from now. The game ends when the frozen piece touched the top row or
// the promoted piece does not fit at its spawn position.
func (l *Loop) lock() {
	toppedOut := false
	for _, pt := range l.active.Blocks() {
		if pt.Y == 0 {
			toppedOut = true
			break
		}
	}

	l.board.Freeze(l.active)

	if cleared := ClearLines(&l.board); cleared > 0 {
		points, levels := l.session.AwardLines(cleared, l.rules)
		l.emit(EventLinesCleared, cleared, points)
		if levels > 0 {
			l.interval = l.rules.DropInterval(l.session.Level)
			l.emit(EventLevelUp, 0, 0)
		}
	}

	if toppedOut || !Valid(l.next, &l.board) {
		l.gameOver()
		return
	}
	l.active = l.next
	l.next = l.factory.Next()
	l.lastDrop = l.clock.Now()
	l.session.SinceDrop = 0
}

func (l *Loop) gameOver() {
	l.state = StateGameOver
	l.scheduler.Cancel()
	l.emit(EventGameOver, 0, 0)
}

func (l *Loop) render() {
	l.renderer.Draw(l.board, l.active.Clone())
	l.renderer.DrawNext(l.next.Clone())
}

func (l *Loop) emit(kind EventKind, lines, points int) {
	l.events = append(l.events, Event{
		Kind:   kind,
		Lines:  lines,
		Points: points,
		Score:  l.session.Points,
		Level:  l.session.Level,
	})
}

// DrainEvents returns the events recorded since the previous call.
func (l *Loop) DrainEvents() []Event {
	events := l.events
	l.events = nil
	return events
}

// State returns the lifecycle state.
func (l *Loop) State() State { return l.state }

// Paused reports whether a running game is paused.
func (l *Loop) Paused() bool { return l.paused }

// Board returns a copy of the board.
func (l *Loop) Board() Board { return l.board }

// Active returns a copy of the falling piece.
func (l *Loop) Active() Piece { return l.active.Clone() }

// Next returns a copy of the preview piece.
func (l *Loop) Next() Piece { return l.next.Clone() }

// Session returns the current score state.
func (l *Loop) Session() Session { return l.session }

// Interval returns the current gravity interval.
func (l *Loop) Interval() time.Duration { return l.interval }

// Rules returns the rule set the loop was built with.
func (l *Loop) Rules() Rules { return l.rules }
