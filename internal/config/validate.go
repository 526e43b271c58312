package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every error returned from Validate.
var ErrInvalidConfig = errors.New("invalid tetris config")

// Validate checks that the config describes a playable rule set.
func (c TetrisConfig) Validate() error {
	if n := len(c.Scoring.LinePoints); n != 5 {
		return fmt.Errorf("%w: scoring.line_points needs 5 entries (0..4 lines), got %d", ErrInvalidConfig, n)
	}
	for i, p := range c.Scoring.LinePoints {
		if p < 0 {
			return fmt.Errorf("%w: scoring.line_points[%d] is negative", ErrInvalidConfig, i)
		}
	}
	if c.Scoring.SoftDrop < 0 || c.Scoring.HardDrop < 0 {
		return fmt.Errorf("%w: drop points must not be negative", ErrInvalidConfig)
	}
	if c.Levels.LinesPerLevel < 1 {
		return fmt.Errorf("%w: levels.lines_per_level must be at least 1", ErrInvalidConfig)
	}
	if len(c.Levels.DropIntervalsMS) == 0 {
		return fmt.Errorf("%w: levels.drop_intervals_ms is empty", ErrInvalidConfig)
	}
	for i, ms := range c.Levels.DropIntervalsMS {
		if ms <= 0 {
			return fmt.Errorf("%w: levels.drop_intervals_ms[%d] must be positive", ErrInvalidConfig, i)
		}
		if i > 0 && ms > c.Levels.DropIntervalsMS[i-1] {
			return fmt.Errorf("%w: levels.drop_intervals_ms[%d] is slower than level %d", ErrInvalidConfig, i, i-1)
		}
	}
	switch c.Randomizer {
	case RandomizerUniform, RandomizerBag:
	default:
		return fmt.Errorf("%w: unknown randomizer %q", ErrInvalidConfig, c.Randomizer)
	}
	return nil
}
