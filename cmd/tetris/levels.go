package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the gravity speed and scoring of each level",
	Long: `Shows the drop interval, the total lines needed to reach each level and
the points for a four-line clear, after applying --config and --difficulty.
Levels past the last row keep its speed.`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func runLevels(cmd *cobra.Command, _ []string) error {
	_, rules, err := loadRules()
	if err != nil {
		return err
	}

	rows := levelRows(rules)
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Level", Width: 6},
			{Title: "Interval", Width: 10},
			{Title: "Lines", Width: 7},
			{Title: "Tetris", Width: 8},
		}),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)
	styles := table.DefaultStyles()
	styles.Selected = lipgloss.NewStyle()
	t.SetStyles(styles)

	fmt.Fprintln(cmd.OutOrStdout(), t.View())
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d lines per level.\n", rules.LinesPerLevel)
	return nil
}

// levelRows lists one row per entry in the interval table. The last level
// is marked with "+" since every later level shares its speed.
func levelRows(rules tetris.Rules) []table.Row {
	rows := make([]table.Row, 0, len(rules.DropIntervals))
	for level := range rules.DropIntervals {
		name := strconv.Itoa(level)
		if level == len(rules.DropIntervals)-1 {
			name += "+"
		}
		rows = append(rows, table.Row{
			name,
			rules.DropInterval(level).String(),
			strconv.Itoa(level * rules.LinesPerLevel),
			strconv.Itoa(rules.LineClearPoints(4, level)),
		})
	}
	return rows
}
