package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/janekbaraniewski/mediaplan/internal/core"
	"github.com/janekbaraniewski/mediaplan/internal/report"
)

func TestRenderShareBar(t *testing.T) {
	charts := report.BuildCharts([]core.ChannelRecord{
		{Name: "Search", Budget: 300},
		{Name: "Social", Budget: 700},
	}, nil)

	out := ansi.Strip(renderShareBar(charts.BudgetShare, 40))
	for _, want := range []string{"Budget Share", "Search: $300 (30.00%)", "Social: $700 (70.00%)"} {
		if !strings.Contains(out, want) {
			t.Errorf("share bar missing %q:\n%s", want, out)
		}
	}
	if n := strings.Count(out, "█"); n != 40 {
		t.Errorf("bar cells = %d, want 40", n)
	}
}

func TestRenderShareBarNoBudget(t *testing.T) {
	charts := report.BuildCharts([]core.ChannelRecord{{Name: "Search"}}, nil)
	out := ansi.Strip(renderShareBar(charts.BudgetShare, 40))
	if !strings.Contains(out, "No budget entered") {
		t.Fatalf("expected empty-state text:\n%s", out)
	}
	if !strings.Contains(out, "Search: $0 (0%)") {
		t.Fatalf("expected zero tooltip:\n%s", out)
	}
}

func TestRenderComboChart(t *testing.T) {
	charts := report.BuildCharts([]core.ChannelRecord{
		{Name: "Search", ClickThroughRate: 0.02, CostPerClick: 1, ConversionRate: 0.05, Budget: 1000},
		{Name: "Display", ClickThroughRate: 0.01, CostPerClick: 2, ConversionRate: 0.01, Budget: 500},
	}, nil)

	out := ansi.Strip(renderComboChart(charts.Outcome, 60, 8))
	for _, want := range []string{"Conversions & Cost", "Conversions (left)", "Cost (right)", "$1,000"} {
		if !strings.Contains(out, want) {
			t.Errorf("combo chart missing %q:\n%s", want, out)
		}
	}
}

func TestRenderComboChartEmpty(t *testing.T) {
	charts := report.BuildCharts(nil, nil)
	out := ansi.Strip(renderComboChart(charts.Reach, 40, 6))
	if !strings.Contains(out, "No channels") {
		t.Fatalf("expected empty-state text:\n%s", out)
	}
}

func TestAxisMax(t *testing.T) {
	c := report.ComboChart{Series: []report.Series{
		{Values: []float64{1, 5}, Axis: report.AxisLeft},
		{Values: []float64{100, 20}, Axis: report.AxisRight},
	}}
	if got := axisMax(c, report.AxisLeft); got != 5 {
		t.Errorf("left max = %v, want 5", got)
	}
	if got := axisMax(c, report.AxisRight); got != 100 {
		t.Errorf("right max = %v, want 100", got)
	}
}
