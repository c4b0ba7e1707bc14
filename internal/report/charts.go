package report

import (
	"github.com/janekbaraniewski/mediaplan/internal/core"
	"github.com/janekbaraniewski/mediaplan/internal/format"
	"github.com/samber/lo"
)

// DefaultPalette is the slice/series color cycle used when a caller does
// not supply its own.
var DefaultPalette = []string{"#FF6384", "#36A2EB", "#FFCE56", "#4BC0C0"}

type Axis int

const (
	AxisLeft Axis = iota
	AxisRight
)

func (a Axis) String() string {
	if a == AxisRight {
		return "right"
	}
	return "left"
}

// Series is one labeled array of values drawn against a single axis.
type Series struct {
	Label  string
	Values []float64
	Color  string
	Axis   Axis
}

// Max returns the largest value in the series, or 0 when it has none above 0.
func (s Series) Max() float64 {
	return lo.Max(append([]float64{0}, s.Values...))
}

// AxisSpec describes one vertical axis of a combo chart.
type AxisSpec struct {
	Title      string
	TickFormat func(float64) string
}

// ComboChart is a grouped bar chart keyed by channel, with two series on
// independent left and right axes.
type ComboChart struct {
	Title  string
	Labels []string
	Series []Series
	Left   AxisSpec
	Right  AxisSpec
}

// PieChart is the budget share chart: one slice per channel.
type PieChart struct {
	Title  string
	Labels []string
	Values []float64
	Colors []string
	Total  float64
}

// Share returns slice i as a percentage of the total, 0 when the total is 0.
func (p PieChart) Share(i int) float64 {
	if i < 0 || i >= len(p.Values) || p.Total == 0 {
		return 0
	}
	return p.Values[i] / p.Total * 100
}

// Tooltip renders the hover text of slice i: "Search: $300 (30.00%)".
func (p PieChart) Tooltip(i int) string {
	if i < 0 || i >= len(p.Values) {
		return ""
	}
	pct := "0"
	if p.Total != 0 {
		pct = format.Fixed2(p.Share(i))
	}
	return p.Labels[i] + ": $" + format.Grouped(p.Values[i]) + " (" + pct + "%)"
}

// ChartSet holds the three charts of a media plan.
type ChartSet struct {
	BudgetShare PieChart
	Reach       ComboChart
	Outcome     ComboChart
}

// BuildCharts maps the channel list to fresh chart models.
func BuildCharts(records []core.ChannelRecord, palette []string) ChartSet {
	if len(palette) < 4 {
		palette = DefaultPalette
	}
	labels := lo.Map(records, func(c core.ChannelRecord, _ int) string { return c.Name })
	derived := core.ComputeAll(records)
	budgets := lo.Map(records, func(c core.ChannelRecord, _ int) float64 { return c.Budget })

	pie := PieChart{
		Title:  "Budget Share",
		Labels: labels,
		Values: budgets,
		Colors: lo.Times(len(records), func(i int) string { return palette[i%len(palette)] }),
		Total:  core.TotalBudget(records),
	}

	reach := ComboChart{
		Title:  "Impressions & Clicks",
		Labels: labels,
		Series: []Series{
			{
				Label:  "Impressions",
				Values: lo.Map(derived, func(d core.DerivedMetrics, _ int) float64 { return d.Impressions }),
				Color:  palette[1],
				Axis:   AxisLeft,
			},
			{
				Label:  "Clicks",
				Values: lo.Map(derived, func(d core.DerivedMetrics, _ int) float64 { return d.Clicks }),
				Color:  palette[0],
				Axis:   AxisRight,
			},
		},
		Left:  AxisSpec{Title: "Impressions", TickFormat: format.Grouped},
		Right: AxisSpec{Title: "Clicks", TickFormat: format.Grouped},
	}

	outcome := ComboChart{
		Title:  "Conversions & Cost",
		Labels: labels,
		Series: []Series{
			{
				Label:  "Conversions",
				Values: lo.Map(derived, func(d core.DerivedMetrics, _ int) float64 { return d.Conversions }),
				Color:  palette[2],
				Axis:   AxisLeft,
			},
			{
				Label:  "Cost",
				Values: budgets,
				Color:  palette[3],
				Axis:   AxisRight,
			},
		},
		Left:  AxisSpec{Title: "Conversions", TickFormat: format.Grouped},
		Right: AxisSpec{Title: "Cost", TickFormat: func(v float64) string { return "$" + format.Grouped(v) }},
	}

	return ChartSet{BudgetShare: pie, Reach: reach, Outcome: outcome}
}
