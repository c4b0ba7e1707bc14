package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/janekbaraniewski/mediaplan/internal/core"
	"github.com/janekbaraniewski/mediaplan/internal/format"
	"github.com/janekbaraniewski/mediaplan/internal/report"
	"github.com/spf13/cobra"
)

const channelFields = 5

type calcOutput struct {
	Channels    []calcChannel `json:"channels"`
	TotalBudget float64       `json:"total_budget"`
}

type calcChannel struct {
	core.ChannelRecord
	Metrics core.DerivedMetrics `json:"metrics"`
}

func newCalcCommand() *cobra.Command {
	var (
		channels []string
		outFmt   string
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute a media plan without the dashboard",
		Long: "Compute derived metrics for one or more channels and print the plan.\n" +
			"Each --channel is \"Name,CTR,CPC,ConvRate,Budget\". Use ';' as the separator\n" +
			"when amounts carry thousands separators: \"Search;2%;$1.00;5%;$1,000\".",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(channels) == 0 {
				return fmt.Errorf("at least one --channel is required")
			}
			planner, err := plannerFromFlags(channels)
			if err != nil {
				return err
			}
			return writePlan(cmd.OutOrStdout(), planner, outFmt)
		},
	}

	cmd.Flags().StringArrayVarP(&channels, "channel", "c", nil, "channel as Name,CTR,CPC,ConvRate,Budget (repeatable)")
	cmd.Flags().StringVarP(&outFmt, "format", "f", "table", "output format: table, csv or json")
	return cmd
}

// parseChannelFlag splits one --channel value into row text. Missing
// trailing fields are left blank.
func parseChannelFlag(value string) (core.RowInput, error) {
	sep := ","
	if strings.Contains(value, ";") {
		sep = ";"
	}
	parts := strings.Split(value, sep)
	if len(parts) > channelFields {
		return core.RowInput{}, fmt.Errorf("channel %q has %d fields, want at most %d", value, len(parts), channelFields)
	}
	fields := make([]string, channelFields)
	for i, p := range parts {
		fields[i] = strings.TrimSpace(p)
	}
	return core.RowInput{
		Name:           fields[0],
		CTR:            fields[1],
		CPC:            fields[2],
		ConversionRate: fields[3],
		Budget:         fields[4],
	}, nil
}

func plannerFromFlags(values []string) (*core.Planner, error) {
	p := core.NewPlanner(1)
	for i, v := range values {
		row, err := parseChannelFlag(v)
		if err != nil {
			return nil, err
		}
		if i > 0 {
			p.OnAddRow()
		}
		p.OnRowEdited(i, row)
	}
	return p, nil
}

func writePlan(w io.Writer, p *core.Planner, outFmt string) error {
	records := p.Records()
	switch strings.ToLower(strings.TrimSpace(outFmt)) {
	case "", "table":
		return writeTable(w, report.BuildTable(records), core.TotalBudget(records))
	case "csv":
		return report.BuildTable(records).WriteCSV(w)
	case "json":
		out := calcOutput{TotalBudget: core.TotalBudget(records)}
		for i, d := range p.Derived() {
			out.Channels = append(out.Channels, calcChannel{ChannelRecord: records[i], Metrics: d})
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	default:
		return fmt.Errorf("unknown format %q (want table, csv or json)", outFmt)
	}
}

func writeTable(w io.Writer, t report.Table, total float64) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.ToUpper(strings.Join(t.Headers, "\t")))
	for _, row := range t.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\nTotal budget: %s\n", format.Amount(total))
	return err
}
