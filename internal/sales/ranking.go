package sales

import (
	"sort"

	"storelens/internal/dataset"
)

// DefaultTopN is the standard listing depth for rankings and insights.
const DefaultTopN = 10

// TopProducts returns the n products with the highest revenue for the
// period, rank-annotated, descending. Rows without strictly positive
// revenue are excluded; base price and sale count are attached when the
// table carries them. A missing revenue column yields an empty result.
func TopProducts(t dataset.Table, p dataset.Period, n int) []RankedProduct {
	out := []RankedProduct{}
	col := p.Column()
	if !t.HasColumn(col) {
		return out
	}

	for _, row := range ExcludeTotals(t).Rows {
		revenue, ok := row.Float(col)
		if !ok || revenue <= 0 {
			continue
		}
		name, _ := row.Text(dataset.ColProductName)
		entry := RankedProduct{Name: name, Revenue: revenue}
		if price, ok := row.Float(dataset.ColBasePrice); ok {
			entry.BasePrice = price
		}
		if count, ok := row.Float(dataset.ColSaleCount); ok {
			entry.SaleCount = count
		}
		out = append(out, entry)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Revenue > out[j].Revenue })
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}
