package tetris

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Rules holds the scoring and speed tables used by the loop.
type Rules struct {
	LinePoints     [5]int // indexed by lines cleared at once
	SoftDropPoints int
	HardDropPoints int
	LinesPerLevel  int
	DropIntervals  []time.Duration // indexed by level, non-increasing
	Randomizer     Randomizer
}

// DefaultRules returns the classic rule set.
func DefaultRules() Rules {
	return Rules{
		LinePoints:     [5]int{0, 100, 300, 500, 800},
		SoftDropPoints: 1,
		HardDropPoints: 2,
		LinesPerLevel:  10,
		DropIntervals: []time.Duration{
			880 * time.Millisecond,
			720 * time.Millisecond,
			630 * time.Millisecond,
			550 * time.Millisecond,
		},
		Randomizer: RandomizerUniform,
	}
}

// RulesFromConfig converts a validated YAML config into Rules.
func RulesFromConfig(cfg config.TetrisConfig) (Rules, error) {
	if err := cfg.Validate(); err != nil {
		return Rules{}, fmt.Errorf("tetris: rules: %w", err)
	}
	r := Rules{
		SoftDropPoints: cfg.Scoring.SoftDrop,
		HardDropPoints: cfg.Scoring.HardDrop,
		LinesPerLevel:  cfg.Levels.LinesPerLevel,
		DropIntervals:  make([]time.Duration, len(cfg.Levels.DropIntervalsMS)),
		Randomizer:     Randomizer(cfg.Randomizer),
	}
	copy(r.LinePoints[:], cfg.Scoring.LinePoints)
	for i, ms := range cfg.Levels.DropIntervalsMS {
		r.DropIntervals[i] = time.Duration(ms) * time.Millisecond
	}
	return r, nil
}

// Validate checks the invariants the loop relies on.
func (r Rules) Validate() error {
	if r.LinesPerLevel < 1 {
		return fmt.Errorf("tetris: rules: lines per level must be at least 1, got %d", r.LinesPerLevel)
	}
	if len(r.DropIntervals) == 0 {
		return fmt.Errorf("tetris: rules: empty drop interval table")
	}
	for i, d := range r.DropIntervals {
		if d <= 0 {
			return fmt.Errorf("tetris: rules: drop interval %d is not positive", i)
		}
		if i > 0 && d > r.DropIntervals[i-1] {
			return fmt.Errorf("tetris: rules: drop interval %d is slower than level %d", i, i-1)
		}
	}
	switch r.Randomizer {
	case "", RandomizerUniform, RandomizerBag:
	default:
		return fmt.Errorf("tetris: rules: unknown randomizer %q", r.Randomizer)
	}
	return nil
}

// DropInterval returns the gravity interval for level. Levels past the end
// of the table use the last (fastest) entry.
func (r Rules) DropInterval(level int) time.Duration {
	return r.DropIntervals[core.Clamp(level, 0, len(r.DropIntervals)-1)]
}

// LineClearPoints returns the points for clearing lines rows at once at the
// given level: the table entry times (level + 1). Counts outside 1..4 score 0.
func (r Rules) LineClearPoints(lines, level int) int {
	if lines <= 0 || lines >= len(r.LinePoints) {
		return 0
	}
	return r.LinePoints[lines] * (level + 1)
}
