// Package report turns the channel list into the display table and the
// chart models. Both are rebuilt from scratch on every change.
package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/janekbaraniewski/mediaplan/internal/core"
	"github.com/janekbaraniewski/mediaplan/internal/format"
)

// TableHeaders are the column titles of the media plan table, in order.
var TableHeaders = []string{
	"Channel",
	"Impressions",
	"Clicks",
	"CTR",
	"CPC",
	"CPM",
	"Conversions",
	"Cost/Conv.",
	"Conv. Rate",
	"Budget",
}

// Table is a fully rendered media plan: one row of display cells per channel.
type Table struct {
	Headers []string
	Rows    [][]string
}

// BuildTable renders one row per record. Records and rows are index-aligned.
func BuildTable(records []core.ChannelRecord) Table {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, TableRow(rec, core.ComputeDerived(rec)))
	}
	headers := make([]string, len(TableHeaders))
	copy(headers, TableHeaders)
	return Table{Headers: headers, Rows: rows}
}

// TableRow renders the ten display cells for a single channel.
func TableRow(rec core.ChannelRecord, d core.DerivedMetrics) []string {
	return []string{
		rec.Name,
		format.Rounded(d.Impressions),
		format.Rounded(d.Clicks),
		format.Percent(rec.ClickThroughRate),
		format.Amount(rec.CostPerClick),
		format.Amount(d.CostPerMille),
		format.Fixed2(d.Conversions),
		format.Amount(d.CostPerConversion),
		format.Percent(rec.ConversionRate),
		"$" + format.Grouped(rec.Budget),
	}
}

// WriteCSV writes the header and every row as CSV.
func (t Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Headers); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return fmt.Errorf("writing csv rows: %w", err)
	}
	return nil
}
