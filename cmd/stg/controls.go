package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-stg/internal/platform/tui"
)

var controlsCmd = &cobra.Command{
	Use:   "controls",
	Short: "Show key bindings",
	Run:   runControls,
}

func runControls(cmd *cobra.Command, args []string) {
	keyStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Width(12)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("250"))

	var b strings.Builder
	b.WriteString("Controls:\n\n")
	for _, group := range tui.DefaultKeyMap().FullHelp() {
		for _, binding := range group {
			b.WriteString("  " + formatBinding(binding, keyStyle, descStyle) + "\n")
		}
		b.WriteString("\n")
	}
	b.WriteString("Movement and fire stay active while the key repeats.\n")
	fmt.Print(b.String())
}

func formatBinding(b key.Binding, keyStyle, descStyle lipgloss.Style) string {
	h := b.Help()
	return keyStyle.Render(h.Key) + descStyle.Render(h.Desc)
}
