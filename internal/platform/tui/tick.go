// Package tui provides the Bubble Tea host for the tetris engine.
// It turns scheduler requests into timed frames, maps keys to commands and
// paints the loop's render output.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent when a scheduled frame is due. Gen identifies the
// scheduler generation that requested it.
type FrameMsg struct {
	Gen  uint64
	Time time.Time
}

// frameScheduler implements tetris.Scheduler with tea.Tick. Requests made
// during an Update are collected with Cmd; Cancel starts a new generation so
// frames already in flight are ignored when they arrive.
type frameScheduler struct {
	interval  time.Duration
	gen       uint64
	requested bool
}

func newFrameScheduler(frameRate int) *frameScheduler {
	if frameRate <= 0 {
		frameRate = 60
	}
	return &frameScheduler{interval: time.Second / time.Duration(frameRate)}
}

// Schedule requests one more frame.
func (s *frameScheduler) Schedule() {
	s.requested = true
}

// Cancel drops a pending request and invalidates frames in flight.
func (s *frameScheduler) Cancel() {
	s.requested = false
	s.gen++
}

// Cmd returns the tick command for a frame requested since the last call,
// or nil.
func (s *frameScheduler) Cmd() tea.Cmd {
	if !s.requested {
		return nil
	}
	s.requested = false
	gen := s.gen
	return tea.Tick(s.interval, func(t time.Time) tea.Msg {
		return FrameMsg{Gen: gen, Time: t}
	})
}

// Accept reports whether msg belongs to the current generation.
func (s *frameScheduler) Accept(msg FrameMsg) bool {
	return msg.Gen == s.gen
}
