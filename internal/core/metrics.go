package core

import (
	"math"

	"github.com/samber/lo"
)

// ComputeDerived maps a record to its derived metrics. It is pure: the same
// record always yields the same metrics.
//
// Any division by zero, and any other non-finite intermediate, yields 0 so
// tables and charts never show Inf or NaN.
func ComputeDerived(c ChannelRecord) DerivedMetrics {
	clicks := safeDiv(c.Budget, c.CostPerClick)
	conversions := finite(clicks * c.ConversionRate)
	impressions := safeDiv(clicks, c.ClickThroughRate)
	cpm := finite(safeDiv(c.Budget, impressions) * 1000)

	var costPerConversion float64
	if conversions != 0 {
		costPerConversion = safeDiv(c.Budget, conversions)
	}

	return DerivedMetrics{
		Impressions:       impressions,
		Clicks:            clicks,
		CostPerMille:      cpm,
		Conversions:       conversions,
		CostPerConversion: costPerConversion,
	}
}

// ComputeAll derives metrics for every record, index-aligned with the input.
func ComputeAll(records []ChannelRecord) []DerivedMetrics {
	return lo.Map(records, func(c ChannelRecord, _ int) DerivedMetrics {
		return ComputeDerived(c)
	})
}

// TotalBudget sums the budget of every record.
func TotalBudget(records []ChannelRecord) float64 {
	return finite(lo.SumBy(records, func(c ChannelRecord) float64 { return c.Budget }))
}

func safeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return finite(num / den)
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
