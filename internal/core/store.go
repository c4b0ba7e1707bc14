package core

import "github.com/samber/lo"

// ChannelStore is the ordered list of channel records, index-aligned with
// the form rows. It is not safe for concurrent use; the planner that owns
// it is driven from a single event loop.
type ChannelStore struct {
	records []ChannelRecord
}

func NewChannelStore() *ChannelStore {
	return &ChannelStore{}
}

// Upsert overwrites the record at index, or appends it. An index past the
// end extends the store with default records so it never becomes sparse.
func (s *ChannelStore) Upsert(index int, rec ChannelRecord) {
	if index < 0 {
		return
	}
	for len(s.records) < index {
		s.records = append(s.records, NewChannelRecord(len(s.records)))
	}
	if index == len(s.records) {
		s.records = append(s.records, rec)
		return
	}
	s.records[index] = rec
}

// TruncateToFirst drops every record except the first.
func (s *ChannelStore) TruncateToFirst() {
	if len(s.records) > 1 {
		clear(s.records[1:])
		s.records = s.records[:1]
	}
}

// ResetAllMetrics zeroes the numeric inputs of every record, keeping names.
func (s *ChannelStore) ResetAllMetrics() {
	s.records = lo.Map(s.records, func(c ChannelRecord, _ int) ChannelRecord {
		return c.WithoutMetrics()
	})
}

func (s *ChannelStore) Len() int { return len(s.records) }

// At returns the record at index and whether it exists.
func (s *ChannelStore) At(index int) (ChannelRecord, bool) {
	if index < 0 || index >= len(s.records) {
		return ChannelRecord{}, false
	}
	return s.records[index], true
}

// Records returns a copy of the records in row order.
func (s *ChannelStore) Records() []ChannelRecord {
	out := make([]ChannelRecord, len(s.records))
	copy(out, s.records)
	return out
}

func (s *ChannelStore) TotalBudget() float64 {
	return TotalBudget(s.records)
}
