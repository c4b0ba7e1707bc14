package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelpOverlay draws a centered popup with the formulas and every key
// binding. Any key dismisses it.
func (m Model) renderHelpOverlay(screenW, screenH int) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(colorLavender)
	descStyle := lipgloss.NewStyle().Foreground(colorSubtext)

	lines := []string{
		titleStyle.Render("mediaplan help"),
		"",
		sectionHeaderStyle.Render("Derived metrics"),
		descStyle.Render("clicks        = budget / CPC"),
		descStyle.Render("impressions   = clicks / CTR"),
		descStyle.Render("CPM           = budget / impressions × 1000"),
		descStyle.Render("conversions   = clicks × conversion rate"),
		descStyle.Render("cost / conv.  = budget / conversions"),
		dimStyle.Italic(true).Render("Any division by zero shows as 0."),
		"",
		sectionHeaderStyle.Render("Keys"),
	}

	for _, group := range keys.FullHelp() {
		for _, b := range group {
			h := b.Help()
			lines = append(lines, helpKeyStyle.Render(padRight(h.Key, 12))+descStyle.Render(h.Desc))
		}
	}
	lines = append(lines, "", dimStyle.Render("press any key to close"))

	box := helpBoxStyle.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(screenW, screenH, lipgloss.Center, lipgloss.Center, box)
}

func padRight(s string, w int) string {
	if n := lipgloss.Width(s); n < w {
		return s + strings.Repeat(" ", w-n)
	}
	return s
}
