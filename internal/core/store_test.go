package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestChannelStore_UpsertAppendsAndOverwrites(t *testing.T) {
	s := NewChannelStore()
	s.Upsert(0, ChannelRecord{Name: "Search", Budget: 10})
	s.Upsert(1, ChannelRecord{Name: "Social", Budget: 20})
	s.Upsert(0, ChannelRecord{Name: "Search", Budget: 15})

	want := []ChannelRecord{
		{Name: "Search", Budget: 15},
		{Name: "Social", Budget: 20},
	}
	if diff := cmp.Diff(want, s.Records()); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestChannelStore_UpsertPastEndStaysContiguous(t *testing.T) {
	s := NewChannelStore()
	s.Upsert(2, ChannelRecord{Name: "Video"})

	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3", s.Len())
	}
	for i, name := range []string{"Channel 1", "Channel 2", "Video"} {
		rec, ok := s.At(i)
		if !ok || rec.Name != name {
			t.Errorf("At(%d) = %+v, %v; want name %q", i, rec, ok, name)
		}
	}
}

func TestChannelStore_UpsertNegativeIgnored(t *testing.T) {
	s := NewChannelStore()
	s.Upsert(-1, ChannelRecord{Name: "x"})
	if s.Len() != 0 {
		t.Fatalf("Len = %d, want 0", s.Len())
	}
}

func TestChannelStore_TruncateToFirst(t *testing.T) {
	s := NewChannelStore()
	s.Upsert(0, ChannelRecord{Name: "A", Budget: 1})
	s.Upsert(1, ChannelRecord{Name: "B", Budget: 2})
	s.Upsert(2, ChannelRecord{Name: "C", Budget: 3})

	s.TruncateToFirst()

	if diff := cmp.Diff([]ChannelRecord{{Name: "A", Budget: 1}}, s.Records()); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
	if _, ok := s.At(1); ok {
		t.Fatal("index 1 should be gone")
	}

	empty := NewChannelStore()
	empty.TruncateToFirst()
	if empty.Len() != 0 {
		t.Fatalf("empty store Len = %d after truncate", empty.Len())
	}
}

func TestChannelStore_ResetAllMetrics(t *testing.T) {
	s := NewChannelStore()
	s.Upsert(0, ChannelRecord{Name: "A", ClickThroughRate: 0.1, CostPerClick: 2, ConversionRate: 0.3, Budget: 400})
	s.Upsert(1, ChannelRecord{Name: "B", Budget: 50})

	s.ResetAllMetrics()

	want := []ChannelRecord{{Name: "A"}, {Name: "B"}}
	if diff := cmp.Diff(want, s.Records()); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
	if s.TotalBudget() != 0 {
		t.Fatalf("TotalBudget = %v, want 0", s.TotalBudget())
	}
}

func TestChannelStore_RecordsIsACopy(t *testing.T) {
	s := NewChannelStore()
	s.Upsert(0, ChannelRecord{Name: "A"})
	recs := s.Records()
	recs[0].Name = "mutated"
	if rec, _ := s.At(0); rec.Name != "A" {
		t.Fatalf("store mutated through Records(): %q", rec.Name)
	}
}
