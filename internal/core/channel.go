package core

import (
	"fmt"
	"strings"
)

// ChannelRecord is one marketing channel as entered in a form row.
// Rates are fractions (0.02 for 2%); amounts are plain currency units.
type ChannelRecord struct {
	Name             string  `json:"name"`
	ClickThroughRate float64 `json:"ctr"`
	CostPerClick     float64 `json:"cpc"`
	ConversionRate   float64 `json:"conversion_rate"`
	Budget           float64 `json:"budget"`
}

// DerivedMetrics are computed from a ChannelRecord on every render and never stored.
type DerivedMetrics struct {
	Impressions       float64 `json:"impressions"`
	Clicks            float64 `json:"clicks"`
	CostPerMille      float64 `json:"cpm"`
	Conversions       float64 `json:"conversions"`
	CostPerConversion float64 `json:"cost_per_conversion"`
}

// RowInput is the raw text of one form row, exactly as typed.
type RowInput struct {
	Name           string `json:"name"`
	CTR            string `json:"ctr"`
	CPC            string `json:"cpc"`
	ConversionRate string `json:"conversion_rate"`
	Budget         string `json:"budget"`
}

// IsBlank reports whether every field of the row is empty.
func (r RowInput) IsBlank() bool {
	return strings.TrimSpace(r.Name+r.CTR+r.CPC+r.ConversionRate+r.Budget) == ""
}

// DefaultChannelName is the label used for a row whose name field is blank.
func DefaultChannelName(index int) string {
	return fmt.Sprintf("Channel %d", index+1)
}

// NewChannelRecord returns the zero-valued record for the row at index.
func NewChannelRecord(index int) ChannelRecord {
	return ChannelRecord{Name: DefaultChannelName(index)}
}

// WithoutMetrics keeps the name and zeroes every numeric input.
func (c ChannelRecord) WithoutMetrics() ChannelRecord {
	return ChannelRecord{Name: c.Name}
}
