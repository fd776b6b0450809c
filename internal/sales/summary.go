package sales

import (
	"storelens/internal/dataset"
)

// Summary computes the revenue distribution statistics for a period after
// total-row exclusion and positive-revenue filtering. ok is false when the
// revenue column is absent or no row carries positive revenue.
func Summary(t dataset.Table, p dataset.Period) (SummaryStats, bool) {
	col := p.Column()
	if !t.HasColumn(col) {
		return SummaryStats{Period: p.String()}, false
	}

	var revenues []float64
	for _, row := range ExcludeTotals(t).Rows {
		if revenue, ok := row.Float(col); ok && revenue > 0 {
			revenues = append(revenues, revenue)
		}
	}
	if len(revenues) == 0 {
		return SummaryStats{Period: p.String()}, false
	}

	stats := SummaryStats{
		Period: p.String(),
		Mean:   mean(revenues),
		Median: median(revenues),
		Max:    revenues[0],
		Min:    revenues[0],
		Count:  len(revenues),
		P90:    percentile(revenues, 90),
	}
	for _, v := range revenues {
		stats.Total += v
		if v > stats.Max {
			stats.Max = v
		}
		if v < stats.Min {
			stats.Min = v
		}
	}
	return stats, true
}
