package sales

import (
	"sort"

	"storelens/internal/dataset"
)

// Thresholds for the cross-insight listings.
const (
	hiddenGemMinScore      = 4.5
	underperformerMinScore = 4.0
	valueMinScore          = 4.0
)

// HiddenGems lists products whose review score is at least 4.5 while their
// period revenue sits at or below the sample median: strong candidates for
// marketing investment. Top 10 by review score descending.
func HiddenGems(t dataset.Table, p dataset.Period) []ScoredProduct {
	out := []ScoredProduct{}
	col := p.Column()
	if !t.HasColumn(col) || !t.HasColumn(dataset.ColReviewScore) {
		return out
	}

	rows, revenues := scoredRows(t, col)
	if len(rows) == 0 {
		return out
	}
	medianRevenue := median(revenues)

	for _, r := range rows {
		if r.ReviewScore >= hiddenGemMinScore && r.Revenue <= medianRevenue {
			out = append(out, r)
		}
	}
	return rankByScore(out)
}

// Underperforming lists products with review score of at least 4.0 whose
// revenue falls below the 75th percentile: good reviews, lagging sales.
// Top 10 by review score descending.
func Underperforming(t dataset.Table, p dataset.Period) []ScoredProduct {
	out := []ScoredProduct{}
	col := p.Column()
	if !t.HasColumn(col) || !t.HasColumn(dataset.ColReviewScore) {
		return out
	}

	rows, revenues := scoredRows(t, col)
	if len(rows) == 0 {
		return out
	}
	p75 := percentile(revenues, 75)

	for _, r := range rows {
		if r.ReviewScore >= underperformerMinScore && r.Revenue < p75 {
			out = append(out, r)
		}
	}
	return rankByScore(out)
}

// ReviewNeeded lists products whose revenue is at or above the median while
// their review count is at or below the median review count, ranked by
// revenue/(review count+1) descending: the products most starved of reviews
// relative to their sales. Top 10.
func ReviewNeeded(t dataset.Table, p dataset.Period) []ReviewNeededEntry {
	out := []ReviewNeededEntry{}
	col := p.Column()
	if !t.HasColumn(col) || !t.HasColumn(dataset.ColReviewCount) {
		return out
	}

	type row struct {
		name    string
		revenue float64
		reviews float64
	}
	var rows []row
	var revenues, counts []float64
	for _, rec := range ExcludeTotals(t).Rows {
		revenue, okRev := rec.Float(col)
		reviews, okCount := rec.Float(dataset.ColReviewCount)
		if !okRev || !okCount || revenue <= 0 {
			continue
		}
		name, _ := rec.Text(dataset.ColProductName)
		rows = append(rows, row{name: name, revenue: revenue, reviews: reviews})
		revenues = append(revenues, revenue)
		counts = append(counts, reviews)
	}
	if len(rows) == 0 {
		return out
	}
	medianRevenue := median(revenues)
	medianReviews := median(counts)

	for _, r := range rows {
		if r.revenue >= medianRevenue && r.reviews <= medianReviews {
			out = append(out, ReviewNeededEntry{
				Name:        r.name,
				Revenue:     r.revenue,
				ReviewCount: r.reviews,
				Shortage:    r.revenue / (r.reviews + 1),
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Shortage > out[j].Shortage })
	if len(out) > DefaultTopN {
		out = out[:DefaultTopN]
	}
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}

// ValueForMoney lists products priced at or below the median with a review
// score of at least 4.0, scored by (1 - normalized price) × review score,
// where price is min-max scaled within the filtered subset (0 when all
// prices are equal). Top 10 by value score descending.
func ValueForMoney(t dataset.Table, p dataset.Period) []ValueEntry {
	out := []ValueEntry{}
	if !t.HasColumn(dataset.ColBasePrice) || !t.HasColumn(dataset.ColReviewScore) {
		return out
	}

	type row struct {
		name  string
		price float64
		score float64
	}
	var rows []row
	var prices []float64
	for _, rec := range ExcludeTotals(t).Rows {
		price, okPrice := rec.Float(dataset.ColBasePrice)
		score, okScore := rec.Float(dataset.ColReviewScore)
		if !okPrice || !okScore || price <= 0 {
			continue
		}
		name, _ := rec.Text(dataset.ColProductName)
		rows = append(rows, row{name: name, price: price, score: score})
		prices = append(prices, price)
	}
	if len(rows) == 0 {
		return out
	}
	medianPrice := median(prices)

	var eligible []row
	var minPrice, maxPrice float64
	for _, r := range rows {
		if r.price > medianPrice || r.score < valueMinScore {
			continue
		}
		if len(eligible) == 0 || r.price < minPrice {
			minPrice = r.price
		}
		if len(eligible) == 0 || r.price > maxPrice {
			maxPrice = r.price
		}
		eligible = append(eligible, r)
	}

	priceRange := maxPrice - minPrice
	for _, r := range eligible {
		normalized := 0.0
		if priceRange > 0 {
			normalized = (r.price - minPrice) / priceRange
		}
		out = append(out, ValueEntry{
			Name:        r.name,
			BasePrice:   r.price,
			ReviewScore: r.score,
			ValueScore:  (1 - normalized) * r.score,
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].ValueScore > out[j].ValueScore })
	if len(out) > DefaultTopN {
		out = out[:DefaultTopN]
	}
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}

// scoredRows collects the rows carrying a review score and strictly positive
// revenue for the column, along with the revenue sample used for
// median/percentile thresholds.
func scoredRows(t dataset.Table, revenueCol string) ([]ScoredProduct, []float64) {
	var rows []ScoredProduct
	var revenues []float64
	for _, rec := range ExcludeTotals(t).Rows {
		score, okScore := rec.Float(dataset.ColReviewScore)
		revenue, okRev := rec.Float(revenueCol)
		if !okScore || !okRev || revenue <= 0 {
			continue
		}
		name, _ := rec.Text(dataset.ColProductName)
		rows = append(rows, ScoredProduct{Name: name, ReviewScore: score, Revenue: revenue})
		revenues = append(revenues, revenue)
	}
	return rows, revenues
}

func rankByScore(entries []ScoredProduct) []ScoredProduct {
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].ReviewScore > entries[j].ReviewScore })
	if len(entries) > DefaultTopN {
		entries = entries[:DefaultTopN]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}
