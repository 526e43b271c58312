package mocks

import "github.com/vovakirdan/tui-tetris/internal/tetris"

// ManualScheduler records frame requests instead of delivering them.
// Tests call Fire to run the pending frame.
type ManualScheduler struct {
	Pending   bool
	Scheduled int
	Cancelled int
}

// Ensure ManualScheduler implements Scheduler
var _ tetris.Scheduler = (*ManualScheduler)(nil)

// Schedule marks a frame as pending
func (s *ManualScheduler) Schedule() {
	s.Pending = true
	s.Scheduled++
}

// Cancel drops the pending frame
func (s *ManualScheduler) Cancel() {
	s.Pending = false
	s.Cancelled++
}

// Fire delivers the pending frame to tick, if any, and reports whether one
// was delivered
func (s *ManualScheduler) Fire(tick func()) bool {
	if !s.Pending {
		return false
	}
	s.Pending = false
	tick()
	return true
}
