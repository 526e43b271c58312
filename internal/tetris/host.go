package tetris

import "time"

// Clock is the loop's time source.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// Random is a uniform integer source; *math/rand.Rand satisfies it.
type Random interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// Scheduler asks the host to call Loop.Tick once more at its next frame.
// Cancel discards a requested frame that has not been delivered yet.
type Scheduler interface {
	Schedule()
	Cancel()
}

// Renderer receives the visible state after every update. Board is passed
// by value and pieces are copies, so the sink may keep them.
type Renderer interface {
	Draw(board Board, active Piece)
	DrawNext(next Piece)
}

// Host bundles the collaborators a Loop needs. Nil Clock defaults to
// SystemClock; nil Scheduler and Renderer default to no-ops.
type Host struct {
	Clock     Clock
	Scheduler Scheduler
	Random    Random
	Renderer  Renderer
}

type nopScheduler struct{}

func (nopScheduler) Schedule() {}
func (nopScheduler) Cancel()   {}

type nopRenderer struct{}

func (nopRenderer) Draw(Board, Piece) {}
func (nopRenderer) DrawNext(Piece)    {}
