package tetris

import "time"

// Snapshot is a copy of the loop's observable state.
type Snapshot struct {
	Frames   uint64
	State    State
	Paused   bool
	Board    Board
	Active   Piece
	Next     Piece
	Session  Session
	Interval time.Duration
}

// Snapshot returns a deep copy of the current state.
func (l *Loop) Snapshot() Snapshot {
	return Snapshot{
		Frames:   l.frames,
		State:    l.state,
		Paused:   l.paused,
		Board:    l.board,
		Active:   l.active.Clone(),
		Next:     l.next.Clone(),
		Session:  l.session,
		Interval: l.interval,
	}
}

// Hash computes a deterministic hash of the snapshot for replay testing.
func (s *Snapshot) Hash() uint64 {
	var h uint64 = 17
	mix := func(v int64) {
		h = h*31 + uint64(v)
	}

	mix(int64(s.Frames))
	mix(int64(s.State))
	if s.Paused {
		mix(1)
	} else {
		mix(0)
	}
	for y := range Rows {
		for x := range Cols {
			mix(int64(s.Board[y][x]))
		}
	}
	for _, p := range []Piece{s.Active, s.Next} {
		mix(int64(p.Type))
		mix(int64(p.X))
		mix(int64(p.Y))
		for _, row := range p.Shape {
			for _, c := range row {
				mix(int64(c))
			}
		}
	}
	mix(int64(s.Session.Points))
	mix(int64(s.Session.Lines))
	mix(int64(s.Session.Level))
	mix(int64(s.Session.TotalLines))
	mix(int64(s.Interval))

	return h
}
