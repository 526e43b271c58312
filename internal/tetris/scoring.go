package tetris

import "time"

// Session is the running score of one game.
type Session struct {
	Points int
	// Lines counts rows cleared since the last level up.
	Lines int
	Level int
	// TotalLines counts every row cleared this game.
	TotalLines int
	// SinceDrop is the time accumulated since the last gravity step.
	SinceDrop time.Duration
}

// AwardLines scores a clear of n rows at the current level and advances
// the level each time the line counter reaches the threshold. It returns the
// points awarded and the number of levels gained.
func (s *Session) AwardLines(n int, r Rules) (points, levels int) {
	if n <= 0 {
		return 0, 0
	}
	points = r.LineClearPoints(n, s.Level)
	s.Points += points
	s.Lines += n
	s.TotalLines += n
	for s.Lines >= r.LinesPerLevel {
		s.Level++
		s.Lines -= r.LinesPerLevel
		levels++
	}
	return points, levels
}

// AwardDrop adds drop points for steps rows of soft or hard drop.
func (s *Session) AwardDrop(steps, perStep int) int {
	if steps <= 0 {
		return 0
	}
	pts := steps * perStep
	s.Points += pts
	return pts
}
