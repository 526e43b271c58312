// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris                   - Play a game (same as 'tetris play')
//	tetris play              - Play a game
//	tetris levels            - Show the gravity speed and scoring of each level
//	tetris config            - Print the effective rules configuration as YAML
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: 60)
//	--seed <value>        - Set RNG seed for a reproducible piece sequence
//	--config <path>       - Rules config YAML (default: $TETRIS_CONFIG)
//	--difficulty <name>   - Speed preset: easy, normal, hard
//	--log-file <path>     - Write logs to a file (default: discarded)
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const configEnv = "TETRIS_CONFIG"

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	// A missing .env is fine.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - stack falling blocks in your terminal",
	Long: `Tetris is a terminal falling-block puzzle game.

Available commands:
  play     - Play a game (the default)
  levels   - Show the drop interval for each level
  config   - Print the effective rules configuration

Examples:
  tetris
  tetris play --difficulty hard
  tetris play --seed 42 --log-file ~/.tetris/tetris.log
  tetris levels --config ./my-rules.yaml`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: resolveConfigPath,
	RunE:              runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to rules config YAML (default: $"+configEnv+")")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(configCmd)
}

// resolveConfigPath falls back to $TETRIS_CONFIG when --config is not set.
// main loads .env before flags are parsed, so values from it apply here.
func resolveConfigPath(cmd *cobra.Command, _ []string) error {
	if !cmd.Flags().Changed("config") {
		flagConfig = os.Getenv(configEnv)
	}
	return nil
}
