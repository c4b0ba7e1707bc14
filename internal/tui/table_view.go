package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"
	"github.com/janekbaraniewski/mediaplan/internal/report"
)

const maxChannelLabelW = 24

func renderPlanTable(t report.Table) string {
	rows := make([][]string, len(t.Rows))
	for i, r := range t.Rows {
		row := append([]string(nil), r...)
		if len(row) > 0 {
			row[0] = ansi.Truncate(row[0], maxChannelLabelW, "…")
		}
		rows[i] = row
	}

	tb := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableBorderStyle).
		Headers(t.Headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return tableHeaderStyle
			case col == 0:
				return tableNameStyle
			default:
				return tableCellStyle
			}
		})
	return tb.Render()
}
