package sales

import (
	"sort"

	"storelens/internal/dataset"
)

// PriceEfficiency ranks products by revenue-to-price ratio for the period.
// Only rows with strictly positive revenue and base price participate. A
// missing revenue or price column yields an empty result.
func PriceEfficiency(t dataset.Table, p dataset.Period) []EfficiencyEntry {
	out := []EfficiencyEntry{}
	col := p.Column()
	if !t.HasColumn(col) || !t.HasColumn(dataset.ColBasePrice) {
		return out
	}

	for _, row := range ExcludeTotals(t).Rows {
		revenue, okRev := row.Float(col)
		price, okPrice := row.Float(dataset.ColBasePrice)
		if !okRev || !okPrice || revenue <= 0 || price <= 0 {
			continue
		}
		name, _ := row.Text(dataset.ColProductName)
		out = append(out, EfficiencyEntry{
			Name:       name,
			Revenue:    revenue,
			BasePrice:  price,
			Efficiency: revenue / price,
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Efficiency > out[j].Efficiency })
	if len(out) > DefaultTopN {
		out = out[:DefaultTopN]
	}
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}

// ReviewEfficiency ranks products by revenue per review for the period.
// Rows need strictly positive revenue and review count.
func ReviewEfficiency(t dataset.Table, p dataset.Period) []ReviewEfficiencyEntry {
	out := []ReviewEfficiencyEntry{}
	col := p.Column()
	if !t.HasColumn(col) || !t.HasColumn(dataset.ColReviewCount) {
		return out
	}

	for _, row := range ExcludeTotals(t).Rows {
		revenue, okRev := row.Float(col)
		reviews, okCount := row.Float(dataset.ColReviewCount)
		if !okRev || !okCount || revenue <= 0 || reviews <= 0 {
			continue
		}
		name, _ := row.Text(dataset.ColProductName)
		out = append(out, ReviewEfficiencyEntry{
			Name:             name,
			Revenue:          revenue,
			ReviewCount:      reviews,
			RevenuePerReview: revenue / reviews,
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].RevenuePerReview > out[j].RevenuePerReview })
	if len(out) > DefaultTopN {
		out = out[:DefaultTopN]
	}
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}
