package sales

import (
	"fmt"

	"storelens/internal/dataset"
)

// minRowsForSegmentation is the smallest priced-row count for which
// quartile boundaries are meaningful.
const minRowsForSegmentation = 4

// PriceSegments buckets products into four dynamic price bands bounded by
// the 25th/50th/75th price percentiles: [0,Q1) [Q1,Q2) [Q2,Q3) [Q3,∞).
// Each bucket reports its product count, mean and total revenue for the
// period, and how many of its rows carry revenue data. Fewer than four
// priced rows, or a missing price column, yields an empty result.
func PriceSegments(t dataset.Table, p dataset.Period) []PriceSegment {
	out := []PriceSegment{}
	col := p.Column()
	if !t.HasColumn(col) || !t.HasColumn(dataset.ColBasePrice) {
		return out
	}

	type pricedRow struct {
		price   float64
		revenue float64
		hasRev  bool
	}
	var rows []pricedRow
	var prices []float64
	for _, row := range ExcludeTotals(t).Rows {
		price, ok := row.Float(dataset.ColBasePrice)
		if !ok || price <= 0 {
			continue
		}
		revenue, hasRev := row.Float(col)
		rows = append(rows, pricedRow{price: price, revenue: revenue, hasRev: hasRev})
		prices = append(prices, price)
	}
	if len(rows) < minRowsForSegmentation {
		return out
	}

	q1 := percentile(prices, 25)
	q2 := percentile(prices, 50)
	q3 := percentile(prices, 75)

	segments := []PriceSegment{
		{Label: fmt.Sprintf("%.0f원 미만", q1), Lower: 0, Upper: q1},
		{Label: fmt.Sprintf("%.0f원~%.0f원", q1, q2), Lower: q1, Upper: q2},
		{Label: fmt.Sprintf("%.0f원~%.0f원", q2, q3), Lower: q2, Upper: q3},
		{Label: fmt.Sprintf("%.0f원 이상", q3), Lower: q3, Unbounded: true},
	}

	sums := make([]float64, len(segments))
	for _, row := range rows {
		idx := bucketIndex(row.price, q1, q2, q3)
		segments[idx].ProductCount++
		if row.hasRev {
			segments[idx].WithRevenue++
			sums[idx] += row.revenue
		}
	}
	for i := range segments {
		segments[i].TotalRevenue = sums[i]
		if segments[i].WithRevenue > 0 {
			segments[i].MeanRevenue = sums[i] / float64(segments[i].WithRevenue)
		}
	}
	return segments
}

// bucketIndex places a price into its half-open quartile interval; values
// at or above Q3 land in the open-ended top bucket.
func bucketIndex(price, q1, q2, q3 float64) int {
	switch {
	case price < q1:
		return 0
	case price < q2:
		return 1
	case price < q3:
		return 2
	default:
		return 3
	}
}
