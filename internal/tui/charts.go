package tui

import (
	"math"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/janekbaraniewski/mediaplan/internal/report"
	"github.com/samber/lo"
)

const (
	minChartW = 20
	minChartH = 4
)

// renderShareBar draws the budget pie as a single 100% stacked bar followed
// by one tooltip line per slice.
func renderShareBar(pie report.PieChart, w int) string {
	title := sectionHeaderStyle.Render(pie.Title)
	if len(pie.Values) == 0 || pie.Total <= 0 {
		lines := []string{title, dimStyle.Render("  No budget entered")}
		for i := range pie.Values {
			lines = append(lines, "  "+swatch(pie.Colors[i])+" "+labelStyle.Render(pie.Tooltip(i)))
		}
		return strings.Join(lines, "\n")
	}
	if w < minChartW {
		w = minChartW
	}

	var bar strings.Builder
	used := 0
	last := lastPositive(pie.Values)
	for i, v := range pie.Values {
		if v <= 0 {
			continue
		}
		seg := int(math.Round(pie.Share(i) / 100 * float64(w)))
		if seg < 1 {
			seg = 1
		}
		if i == last || used+seg > w {
			seg = w - used
		}
		if seg <= 0 {
			continue
		}
		used += seg
		bar.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(pie.Colors[i])).Render(strings.Repeat("█", seg)))
	}

	lines := []string{title, "  " + bar.String()}
	for i := range pie.Values {
		lines = append(lines, "  "+swatch(pie.Colors[i])+" "+valueStyle.Render(pie.Tooltip(i)))
	}
	return strings.Join(lines, "\n")
}

func lastPositive(values []float64) int {
	_, idx, ok := lo.FindLastIndexOf(values, func(v float64) bool { return v > 0 })
	if !ok {
		return -1
	}
	return idx
}

// renderComboChart draws a grouped bar chart with one bar per series per
// channel. Each series is scaled against its own axis maximum, so the left
// and right axes are independent.
func renderComboChart(c report.ComboChart, w, h int) string {
	if w < minChartW {
		w = minChartW
	}
	if h < minChartH {
		h = minChartH
	}

	leftMax, rightMax := axisMax(c, report.AxisLeft), axisMax(c, report.AxisRight)
	leftTop := c.Left.TickFormat(leftMax)
	rightTop := c.Right.TickFormat(rightMax)
	axisW := max(lipgloss.Width(leftTop), lipgloss.Width(rightTop), 1) + 1
	plotW := max(w-2*axisW, minChartW/2)

	bars := len(c.Labels) * len(c.Series)
	barW := 1
	if bars > 0 {
		barW = max((plotW-(bars-1))/bars, 1)
	}

	data := make([]barchart.BarData, 0, bars)
	for i, label := range c.Labels {
		for j, s := range c.Series {
			top := leftMax
			if s.Axis == report.AxisRight {
				top = rightMax
			}
			v := 0.0
			if top > 0 && i < len(s.Values) && s.Values[i] > 0 {
				v = s.Values[i] / top * 100
			}
			name := ""
			if j == 0 {
				name = ansi.Truncate(label, barW*len(c.Series), "…")
			}
			data = append(data, barchart.BarData{
				Label: name,
				Values: []barchart.BarValue{{
					Name:  s.Label,
					Value: v,
					Style: lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color)),
				}},
			})
		}
	}

	plot := dimStyle.Render("  No channels")
	if bars > 0 {
		bc := barchart.New(plotW, h, barchart.WithDataSet(data), barchart.WithMaxValue(100))
		bc.Draw()
		plot = bc.View()
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		axisColumn(leftTop, h, axisW, lipgloss.Left),
		plot,
		axisColumn(rightTop, h, axisW, lipgloss.Right),
	)

	legend := lo.Map(c.Series, func(s report.Series, _ int) string {
		return swatch(s.Color) + " " + labelStyle.Render(s.Label+" ("+s.Axis.String()+")")
	})

	return strings.Join([]string{
		sectionHeaderStyle.Render(c.Title),
		"  " + strings.Join(legend, "   "),
		body,
	}, "\n")
}

func axisMax(c report.ComboChart, axis report.Axis) float64 {
	return lo.Max(append([]float64{0}, lo.FilterMap(c.Series, func(s report.Series, _ int) (float64, bool) {
		return s.Max(), s.Axis == axis
	})...))
}

func axisColumn(top string, h, w int, align lipgloss.Position) string {
	lines := make([]string, h)
	lines[0] = top
	lines[h-1] = "0"
	return dimStyle.Width(w).Align(align).Render(strings.Join(lines, "\n"))
}

func swatch(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("■")
}

// renderCharts lays out the three charts: the budget share bar on top and
// the two combo charts side by side when there is room, stacked otherwise.
func renderCharts(cs report.ChartSet, w, h int) string {
	share := chartBoxStyle.Render(renderShareBar(cs.BudgetShare, w-6))

	if w >= 2*(minChartW+16) {
		half := w/2 - 4
		reach := chartBoxStyle.Render(renderComboChart(cs.Reach, half, h))
		outcome := chartBoxStyle.Render(renderComboChart(cs.Outcome, half, h))
		return lipgloss.JoinVertical(lipgloss.Left, share, lipgloss.JoinHorizontal(lipgloss.Top, reach, outcome))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		share,
		chartBoxStyle.Render(renderComboChart(cs.Reach, w-4, h)),
		chartBoxStyle.Render(renderComboChart(cs.Outcome, w-4, h)),
	)
}
