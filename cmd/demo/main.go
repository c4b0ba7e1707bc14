package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand"
	"os"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/janekbaraniewski/mediaplan/internal/config"
	"github.com/janekbaraniewski/mediaplan/internal/core"
	"github.com/janekbaraniewski/mediaplan/internal/tui"
)

// demoChannel holds sample figures in display units: rates in percent,
// amounts in dollars.
type demoChannel struct {
	name     string
	ctr      float64
	cpc      float64
	convRate float64
	budget   float64
}

var demoChannels = []demoChannel{
	{name: "Search", ctr: 3.2, cpc: 1.45, convRate: 4.1, budget: 12000},
	{name: "Social", ctr: 0.9, cpc: 0.62, convRate: 1.8, budget: 8500},
	{name: "Display", ctr: 0.35, cpc: 0.48, convRate: 0.7, budget: 5000},
	{name: "Video", ctr: 1.1, cpc: 0.95, convRate: 1.2, budget: 7000},
	{name: "Email", ctr: 4.5, cpc: 0.2, convRate: 6.3, budget: 1500},
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))

	randomize := flag.Bool("randomize", false, "jitter the sample figures")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed used with -randomize")
	flag.Parse()

	channels := demoChannels
	if *randomize {
		channels = randomizeDemoChannels(channels, rand.New(rand.NewSource(*seed)))
	}

	cfg := config.DefaultConfig()
	model := tui.NewModel(cfg).WithRows(demoRows(channels))

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "demo error: %v\n", err)
		os.Exit(1)
	}
}

func demoRows(channels []demoChannel) []core.RowInput {
	rows := make([]core.RowInput, 0, len(channels))
	for _, c := range channels {
		rows = append(rows, core.RowInput{
			Name:           c.name,
			CTR:            formatFigure(c.ctr),
			CPC:            formatFigure(c.cpc),
			ConversionRate: formatFigure(c.convRate),
			Budget:         formatFigure(c.budget),
		})
	}
	return rows
}

func formatFigure(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func randomizeDemoChannels(channels []demoChannel, rng *rand.Rand) []demoChannel {
	out := make([]demoChannel, len(channels))
	for i, c := range channels {
		out[i] = demoChannel{
			name:     c.name,
			ctr:      roundLike(c.ctr, jitter(c.ctr, 0.3, rng)),
			cpc:      roundLike(c.cpc, jitter(c.cpc, 0.25, rng)),
			convRate: roundLike(c.convRate, jitter(c.convRate, 0.3, rng)),
			budget:   roundLike(c.budget, jitter(c.budget, 0.4, rng)),
		}
	}
	return out
}

func jitter(base, maxDelta float64, rng *rand.Rand) float64 {
	if base <= 0 {
		return base
	}
	factor := 1 + ((rng.Float64()*2 - 1) * maxDelta)
	return base * factor
}

func roundLike(original, value float64) float64 {
	if math.Abs(original-math.Round(original)) < 1e-9 {
		return math.Round(value)
	}
	return math.Round(value*100) / 100
}
