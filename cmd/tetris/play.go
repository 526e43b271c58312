package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of tetris.

Controls:
  Left/H, Right/L   - Move
  Up/K/X            - Rotate clockwise
  Down/J            - Soft drop (locks the piece when it rests)
  Space             - Hard drop
  Enter             - Start / restart after game over
  P/Esc             - Pause
  ?                 - Toggle help
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Every level falls 25% slower
  normal - The configured speed table
  hard   - Every level falls 25% faster

Examples:
  tetris play
  tetris play --difficulty easy
  tetris play --seed 7 --fps 30
  tetris play --config ./my-rules.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfgFile, rules, err := loadRules()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.FrameRate = flagFPS
	cfg.Seed = flagSeed

	logger.Info("starting game",
		"config", flagConfig,
		"difficulty", flagDifficulty,
		"randomizer", cfgFile.Randomizer,
		"fps", cfg.FrameRate,
		"seed", cfg.Seed,
		"size", [2]int{cfg.ScreenW, cfg.ScreenH},
	)

	if err := tui.Run(cfg, rules, logger); err != nil {
		logger.Error("game exited", "error", err)
		return err
	}
	return nil
}
