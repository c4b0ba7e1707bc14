package core

import (
	"log/slog"
	"strings"

	"github.com/janekbaraniewski/mediaplan/internal/format"
)

// Planner keeps the form rows and the channel store in lockstep and turns
// UI commands into store mutations. Every mutating command notifies the
// registered listeners with the fresh records before returning.
//
// Row i and record i are created and removed together, so Rows() and
// Records() always have the same length and never drop below one.
type Planner struct {
	rows     []RowInput
	store    *ChannelStore
	onChange []func([]ChannelRecord)
}

// NewPlanner returns a planner with initialRows empty rows (at least one).
func NewPlanner(initialRows int) *Planner {
	p := &Planner{store: NewChannelStore()}
	if initialRows < 1 {
		initialRows = 1
	}
	for i := 0; i < initialRows; i++ {
		p.appendRow()
	}
	return p
}

// OnChange registers fn to run after every mutating command.
func (p *Planner) OnChange(fn func([]ChannelRecord)) {
	if fn != nil {
		p.onChange = append(p.onChange, fn)
	}
}

// RecordFromRow normalizes raw row text into a record for the row at index.
func RecordFromRow(index int, in RowInput) ChannelRecord {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = DefaultChannelName(index)
	}
	return ChannelRecord{
		Name:             name,
		ClickThroughRate: format.NormalizePercentage(in.CTR),
		CostPerClick:     format.NormalizeCurrency(in.CPC),
		ConversionRate:   format.NormalizePercentage(in.ConversionRate),
		Budget:           format.NormalizeCurrency(in.Budget),
	}
}

// OnRowEdited stores the raw text of row index and upserts its record.
// Editing the row just past the last one adds it; indices further out are
// ignored because rows are only ever added one at a time.
func (p *Planner) OnRowEdited(index int, in RowInput) {
	if index < 0 || index > len(p.rows) {
		slog.Debug("row edit out of range", "index", index, "rows", len(p.rows))
		return
	}
	if index == len(p.rows) {
		p.rows = append(p.rows, in)
	} else {
		p.rows[index] = in
	}
	p.store.Upsert(index, RecordFromRow(index, in))
	p.notify()
}

// OnAddRow appends an empty row together with its default record.
func (p *Planner) OnAddRow() {
	p.appendRow()
	p.notify()
}

// OnRemoveExtraRows keeps only the first row. Its inputs are cleared and its
// metric fields zeroed; the record name survives.
func (p *Planner) OnRemoveExtraRows() {
	p.rows = p.rows[:1]
	p.rows[0] = RowInput{}
	p.store.TruncateToFirst()
	p.store.ResetAllMetrics()
	p.notify()
}

// OnReset clears every row's inputs and zeroes the metric fields of every
// record. Names and the row count are kept.
func (p *Planner) OnReset() {
	for i := range p.rows {
		p.rows[i] = RowInput{}
	}
	p.store.ResetAllMetrics()
	p.notify()
}

// Rows returns a copy of the raw row inputs.
func (p *Planner) Rows() []RowInput {
	out := make([]RowInput, len(p.rows))
	copy(out, p.rows)
	return out
}

func (p *Planner) Records() []ChannelRecord { return p.store.Records() }

func (p *Planner) Derived() []DerivedMetrics { return ComputeAll(p.store.Records()) }

func (p *Planner) Len() int { return len(p.rows) }

func (p *Planner) appendRow() {
	idx := len(p.rows)
	p.rows = append(p.rows, RowInput{})
	p.store.Upsert(idx, NewChannelRecord(idx))
}

func (p *Planner) notify() {
	records := p.store.Records()
	slog.Debug("plan changed", "channels", len(records), "total_budget", TotalBudget(records))
	for _, fn := range p.onChange {
		fn(records)
	}
}
