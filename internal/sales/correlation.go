package sales

import (
	"storelens/internal/dataset"
)

// scoreBand is one fixed review-score interval of the correlation breakdown.
type scoreBand struct {
	label string
	min   float64 // inclusive
	max   float64 // exclusive; 0 means open-ended
	open  bool
}

var scoreBands = []scoreBand{
	{label: "3.0 미만", min: 0, max: 3.0},
	{label: "3.0~4.0", min: 3.0, max: 4.0},
	{label: "4.0~4.5", min: 4.0, max: 4.5},
	{label: "4.5~5.0", min: 4.5, open: true},
}

// ReviewSalesCorrelation computes the Pearson correlation between review
// score and period revenue over the filtered table, plus a fixed-bucket
// aggregation of mean revenue (and mean review count when the column is
// present) per score band. Missing columns or fewer than two samples yield
// an empty result.
func ReviewSalesCorrelation(t dataset.Table, p dataset.Period) CorrelationResult {
	col := p.Column()
	if !t.HasColumn(col) || !t.HasColumn(dataset.ColReviewScore) {
		return CorrelationResult{Buckets: []ScoreBucket{}}
	}

	hasReviewCount := t.HasColumn(dataset.ColReviewCount)

	type sample struct {
		score       float64
		revenue     float64
		reviewCount float64
		hasCount    bool
	}
	var samples []sample
	var scores, revenues []float64
	for _, row := range ExcludeTotals(t).Rows {
		score, okScore := row.Float(dataset.ColReviewScore)
		revenue, okRev := row.Float(col)
		if !okScore || !okRev || revenue <= 0 {
			continue
		}
		s := sample{score: score, revenue: revenue}
		if hasReviewCount {
			s.reviewCount, s.hasCount = row.Float(dataset.ColReviewCount)
		}
		samples = append(samples, s)
		scores = append(scores, score)
		revenues = append(revenues, revenue)
	}
	if len(samples) < 2 {
		return CorrelationResult{Buckets: []ScoreBucket{}}
	}

	result := CorrelationResult{
		Coefficient: pearson(scores, revenues),
		Samples:     len(samples),
		Buckets:     make([]ScoreBucket, 0, len(scoreBands)),
	}

	for _, band := range scoreBands {
		var revSum, countSum float64
		var n, withCount int
		for _, s := range samples {
			if s.score < band.min || (!band.open && s.score >= band.max) {
				continue
			}
			n++
			revSum += s.revenue
			if s.hasCount {
				withCount++
				countSum += s.reviewCount
			}
		}
		bucket := ScoreBucket{Label: band.label, ProductCount: n}
		if n > 0 {
			bucket.MeanRevenue = revSum / float64(n)
		}
		if withCount > 0 {
			bucket.MeanReviewCount = countSum / float64(withCount)
		}
		result.Buckets = append(result.Buckets, bucket)
	}
	return result
}
