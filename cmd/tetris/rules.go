package main

import (
	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// loadRules loads the config named by the global flags and applies the
// difficulty preset.
func loadRules() (config.TetrisConfig, tetris.Rules, error) {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return config.TetrisConfig{}, tetris.Rules{}, err
	}

	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return config.TetrisConfig{}, tetris.Rules{}, err
	}
	config.ApplyTetrisPreset(&cfg, preset)

	rules, err := tetris.RulesFromConfig(cfg)
	if err != nil {
		return config.TetrisConfig{}, tetris.Rules{}, err
	}
	return cfg, rules, nil
}
