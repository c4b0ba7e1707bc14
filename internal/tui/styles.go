package tui

import "github.com/charmbracelet/lipgloss"

// ─── Color Palette (reassigned by applyTheme) ───────────────────────────────

var (
	colorBase     lipgloss.Color
	colorSurface0 lipgloss.Color
	colorSurface1 lipgloss.Color
	colorText     lipgloss.Color
	colorSubtext  lipgloss.Color
	colorDim      lipgloss.Color
	colorAccent   lipgloss.Color
	colorBlue     lipgloss.Color
	colorSapphire lipgloss.Color
	colorGreen    lipgloss.Color
	colorYellow   lipgloss.Color
	colorRed      lipgloss.Color
	colorLavender lipgloss.Color
)

// ─── Reusable Styles ────────────────────────────────────────────────────────

var (
	headerBrandStyle   lipgloss.Style
	sectionHeaderStyle lipgloss.Style
	labelStyle         lipgloss.Style
	valueStyle         lipgloss.Style
	dimStyle           lipgloss.Style
	helpKeyStyle       lipgloss.Style
	statusStyle        lipgloss.Style

	inputStyle        lipgloss.Style
	inputFocusedStyle lipgloss.Style
	rowNumberStyle    lipgloss.Style

	tableBorderStyle lipgloss.Style
	tableHeaderStyle lipgloss.Style
	tableCellStyle   lipgloss.Style
	tableNameStyle   lipgloss.Style

	chartBoxStyle lipgloss.Style
	helpBoxStyle  lipgloss.Style
)

func applyTheme(t Theme) {
	colorBase = t.Base
	colorSurface0 = t.Surface0
	colorSurface1 = t.Surface1
	colorText = t.Text
	colorSubtext = t.Subtext
	colorDim = t.Dim
	colorAccent = t.Accent
	colorBlue = t.Blue
	colorSapphire = t.Sapphire
	colorGreen = t.Green
	colorYellow = t.Yellow
	colorRed = t.Red
	colorLavender = t.Lavender

	headerBrandStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
	labelStyle = lipgloss.NewStyle().Foreground(colorSubtext)
	valueStyle = lipgloss.NewStyle().Foreground(colorText)
	dimStyle = lipgloss.NewStyle().Foreground(colorDim)
	helpKeyStyle = lipgloss.NewStyle().Foreground(colorSapphire).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(colorGreen).Italic(true)

	inputStyle = lipgloss.NewStyle().
		Foreground(colorText).
		PaddingRight(1)
	inputFocusedStyle = lipgloss.NewStyle().
		Foreground(colorText).
		Background(colorSurface0).
		PaddingRight(1)
	rowNumberStyle = lipgloss.NewStyle().Foreground(colorDim).Width(4)

	tableBorderStyle = lipgloss.NewStyle().Foreground(colorDim)
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(colorLavender).Padding(0, 1)
	tableCellStyle = lipgloss.NewStyle().Foreground(colorText).Padding(0, 1).Align(lipgloss.Right)
	tableNameStyle = lipgloss.NewStyle().Foreground(colorText).Padding(0, 1).Bold(true)

	chartBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorSurface1).
		Padding(0, 1)
	helpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Background(colorBase).
		Padding(1, 2)
}
