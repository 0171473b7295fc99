package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-stg/internal/storage"
)

// RenderRuns formats the run table for printing after the program exits.
func RenderRuns(title string, runs []storage.Run, stats storage.Stats) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	if len(runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)
		b.WriteString(emptyStyle.Render("No runs finished."))
		b.WriteString("\n")
		return b.String()
	}

	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 10},
		{Title: "Outcome", Width: 10},
		{Title: "Time", Width: 8},
		{Title: "Run", Width: 8},
	}

	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", r.Score),
			r.Outcome,
			formatFrames(r.Frames),
			r.ID.String()[:8],
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// Nothing is selected in a printed table
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(tableStyle.Render(t.View()))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("runs %d  clears %d  best %d  avg %.0f\n",
		stats.Runs, stats.Clears, stats.Best, stats.AvgScore))
	return b.String()
}

// formatFrames renders a frame count at 30 fps as m:ss.
func formatFrames(frames int) string {
	secs := frames / 30
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
