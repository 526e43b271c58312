package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

func TestLevelRows(t *testing.T) {
	rows := levelRows(tetris.DefaultRules())
	if len(rows) != 4 {
		t.Fatalf("got %d rows, expected 4", len(rows))
	}

	tests := []struct {
		row  int
		want []string
	}{
		{0, []string{"0", "880ms", "0", "800"}},
		{1, []string{"1", "720ms", "10", "1600"}},
		{3, []string{"3+", "550ms", "30", "3200"}},
	}
	for _, tt := range tests {
		got := []string(rows[tt.row])
		if strings.Join(got, ",") != strings.Join(tt.want, ",") {
			t.Errorf("row %d = %v, expected %v", tt.row, got, tt.want)
		}
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in, want string
	}{
		{"~/logs/t.log", filepath.Join(home, "logs/t.log")},
		{"~", home},
		{"/tmp/t.log", "/tmp/t.log"},
		{"rel/t.log", "rel/t.log"},
		{"~other/t.log", "~other/t.log"},
	}
	for _, tt := range tests {
		if got := expandHome(tt.in); got != tt.want {
			t.Errorf("expandHome(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tetris.log")
	logger, closeLog, err := newLogger(path, "debug")
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("hello", "score", 100)
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello") || !strings.Contains(string(data), "score=100") {
		t.Errorf("log file = %q", data)
	}
}

func TestNewLoggerRejectsLevel(t *testing.T) {
	if _, _, err := newLogger("", "loud"); err == nil {
		t.Error("expected an error for an unknown level")
	}
}

// execute runs the root command with fresh flag state.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		flagConfig, flagDifficulty = "", ""
		for _, name := range []string{"config", "difficulty"} {
			f := rootCmd.PersistentFlags().Lookup(name)
			_ = f.Value.Set("")
			f.Changed = false
		}
	})
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv(configEnv, "")
}

func TestConfigCommandPrintsYAML(t *testing.T) {
	isolateConfig(t)

	out, err := execute(t, "config", "--difficulty", "hard")
	if err != nil {
		t.Fatal(err)
	}
	var cfg config.TetrisConfig
	if err := yaml.Unmarshal([]byte(out), &cfg); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, out)
	}
	if cfg.Levels.DropIntervalsMS[0] != 660 {
		t.Errorf("hard preset not applied, intervals = %v", cfg.Levels.DropIntervalsMS)
	}
}

func TestConfigPathFromEnvironment(t *testing.T) {
	isolateConfig(t)
	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(path, []byte("levels:\n  lines_per_level: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(configEnv, path)

	out, err := execute(t, "config")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "lines_per_level: 4") {
		t.Errorf("config from $%s not used:\n%s", configEnv, out)
	}
}

func TestLevelsCommandRejectsUnknownDifficulty(t *testing.T) {
	isolateConfig(t)
	if _, err := execute(t, "levels", "--difficulty", "brutal"); err == nil {
		t.Error("expected an error for an unknown difficulty")
	}
}
