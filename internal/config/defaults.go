package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default rules configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Scoring: ScoringConfig{
			LinePoints: []int{0, 100, 300, 500, 800},
			SoftDrop:   1,
			HardDrop:   2,
		},
		Levels: LevelsConfig{
			LinesPerLevel:   10,
			DropIntervalsMS: []int{880, 720, 630, 550},
		},
		Randomizer: RandomizerUniform,
	}
}
