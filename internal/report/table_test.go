package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/janekbaraniewski/mediaplan/internal/core"
)

func TestBuildTable_ReferenceScenario(t *testing.T) {
	rec := core.RecordFromRow(0, core.RowInput{CTR: "2%", CPC: "$1.00", ConversionRate: "5%", Budget: "$1,000"})
	tbl := BuildTable([]core.ChannelRecord{rec})

	if len(tbl.Headers) != 10 {
		t.Fatalf("headers = %d, want 10", len(tbl.Headers))
	}
	want := [][]string{{
		"Channel 1", "50,000", "1,000", "2.00%", "$1.00", "$20.00", "50.00", "$20.00", "5.00%", "$1,000",
	}}
	if diff := cmp.Diff(want, tbl.Rows); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildTable_ZeroCPC(t *testing.T) {
	rec := core.RecordFromRow(0, core.RowInput{Name: "Display", CPC: "0", Budget: "500"})
	row := BuildTable([]core.ChannelRecord{rec}).Rows[0]
	want := []string{"Display", "0", "0", "0.00%", "$0.00", "$0.00", "0.00", "$0.00", "0.00%", "$500"}
	if diff := cmp.Diff(want, row); diff != "" {
		t.Fatalf("row mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildTable_Empty(t *testing.T) {
	tbl := BuildTable(nil)
	if len(tbl.Rows) != 0 {
		t.Fatalf("rows = %d, want 0", len(tbl.Rows))
	}
}

func TestTable_WriteCSV(t *testing.T) {
	tbl := BuildTable([]core.ChannelRecord{{Name: "Search, Brand", Budget: 1234.5}})
	var buf bytes.Buffer
	if err := tbl.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2: %q", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "Channel,Impressions,Clicks") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], `"Search, Brand",0,0`) {
		t.Errorf("row = %q", lines[1])
	}
	if !strings.HasSuffix(lines[1], `"$1,234.5"`) {
		t.Errorf("row budget = %q", lines[1])
	}
}
