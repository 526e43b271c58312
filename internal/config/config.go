// Package config provides YAML-based rules configuration loading and
// difficulty presets for the tetris engine.
package config

// TetrisConfig contains the tunable rule tables for a game.
type TetrisConfig struct {
	Scoring    ScoringConfig `yaml:"scoring"`
	Levels     LevelsConfig  `yaml:"levels"`
	Randomizer string        `yaml:"randomizer"` // "uniform" or "bag"
}

// ScoringConfig defines points awarded by the scorer.
type ScoringConfig struct {
	LinePoints []int `yaml:"line_points"` // indexed by lines cleared at once, 0..4
	SoftDrop   int   `yaml:"soft_drop"`   // per successful soft-drop step
	HardDrop   int   `yaml:"hard_drop"`   // per row descended by a hard drop
}

// LevelsConfig defines level progression and gravity speed.
type LevelsConfig struct {
	LinesPerLevel   int   `yaml:"lines_per_level"`
	DropIntervalsMS []int `yaml:"drop_intervals_ms"` // indexed by level, non-increasing
}

// Randomizer names accepted in TetrisConfig.Randomizer.
const (
	RandomizerUniform = "uniform"
	RandomizerBag     = "bag"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// IntervalScaleForPreset returns the factor applied to every drop interval.
func IntervalScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 1.25
	case DifficultyHard:
		return 0.75
	default:
		return 1.0
	}
}
