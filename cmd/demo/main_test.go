package main

import (
	"math"
	"math/rand"
	"testing"

	"github.com/janekbaraniewski/mediaplan/internal/core"
)

func TestDemoRowsProduceNonZeroMetrics(t *testing.T) {
	rows := demoRows(demoChannels)
	if len(rows) != len(demoChannels) {
		t.Fatalf("rows = %d, want %d", len(rows), len(demoChannels))
	}
	for i, in := range rows {
		rec := core.RecordFromRow(i, in)
		d := core.ComputeDerived(rec)
		if rec.Name != demoChannels[i].name {
			t.Errorf("row %d name = %q", i, rec.Name)
		}
		if d.Impressions <= 0 || d.Clicks <= 0 || d.Conversions <= 0 {
			t.Errorf("%s: derived metrics should be positive: %+v", rec.Name, d)
		}
	}
}

func TestRandomizeDemoChannelsStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for run := 0; run < 50; run++ {
		out := randomizeDemoChannels(demoChannels, rng)
		for i, c := range out {
			base := demoChannels[i]
			if c.name != base.name {
				t.Fatalf("name changed: %q -> %q", base.name, c.name)
			}
			if c.budget < base.budget*0.6-1 || c.budget > base.budget*1.4+1 {
				t.Fatalf("%s budget %v outside jitter range of %v", c.name, c.budget, base.budget)
			}
			if c.budget != math.Round(c.budget) {
				t.Fatalf("%s budget %v should stay whole", c.name, c.budget)
			}
			if c.ctr <= 0 || c.cpc <= 0 || c.convRate <= 0 {
				t.Fatalf("%s has non-positive figures: %+v", c.name, c)
			}
		}
	}
}

func TestRandomizeIsDeterministicForSeed(t *testing.T) {
	a := randomizeDemoChannels(demoChannels, rand.New(rand.NewSource(7)))
	b := randomizeDemoChannels(demoChannels, rand.New(rand.NewSource(7)))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("channel %d differs for the same seed: %+v vs %+v", i, a[i], b[i])
		}
	}
}
