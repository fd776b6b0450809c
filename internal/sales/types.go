package sales

// RankedProduct is one row of a revenue ranking.
type RankedProduct struct {
	Rank      int     `json:"rank"`
	Name      string  `json:"name"`
	Revenue   float64 `json:"revenue"`
	BasePrice float64 `json:"base_price,omitempty"`
	SaleCount float64 `json:"sale_count,omitempty"`
}

// EfficiencyEntry is one row of the price-efficiency ranking
// (revenue divided by base price).
type EfficiencyEntry struct {
	Rank       int     `json:"rank"`
	Name       string  `json:"name"`
	Revenue    float64 `json:"revenue"`
	BasePrice  float64 `json:"base_price"`
	Efficiency float64 `json:"efficiency"`
}

// PriceSegment is one quartile bucket of the dynamic price segmentation.
type PriceSegment struct {
	Label        string  `json:"label"`
	Lower        float64 `json:"lower"`
	Upper        float64 `json:"upper"`
	Unbounded    bool    `json:"unbounded,omitempty"` // top bucket has no upper price
	ProductCount int     `json:"product_count"`
	MeanRevenue  float64 `json:"mean_revenue"`
	TotalRevenue float64 `json:"total_revenue"`
	WithRevenue  int     `json:"with_revenue"` // rows carrying revenue data
}

// ScoreBucket is one fixed review-score band of the correlation breakdown.
type ScoreBucket struct {
	Label           string  `json:"label"`
	ProductCount    int     `json:"product_count"`
	MeanRevenue     float64 `json:"mean_revenue"`
	MeanReviewCount float64 `json:"mean_review_count,omitempty"`
}

// CorrelationResult holds the Pearson coefficient between review score and
// revenue plus the fixed-bucket breakdown.
type CorrelationResult struct {
	Coefficient float64       `json:"coefficient"`
	Samples     int           `json:"samples"`
	Buckets     []ScoreBucket `json:"buckets"`
}

// ReviewEfficiencyEntry is one row of the revenue-per-review ranking.
type ReviewEfficiencyEntry struct {
	Rank             int     `json:"rank"`
	Name             string  `json:"name"`
	Revenue          float64 `json:"revenue"`
	ReviewCount      float64 `json:"review_count"`
	RevenuePerReview float64 `json:"revenue_per_review"`
}

// ScoredProduct is one row of the hidden-gem and underperforming listings.
type ScoredProduct struct {
	Rank        int     `json:"rank"`
	Name        string  `json:"name"`
	ReviewScore float64 `json:"review_score"`
	Revenue     float64 `json:"revenue"`
}

// ReviewNeededEntry is one row of the review-acquisition listing: high
// revenue, few reviews.
type ReviewNeededEntry struct {
	Rank        int     `json:"rank"`
	Name        string  `json:"name"`
	Revenue     float64 `json:"revenue"`
	ReviewCount float64 `json:"review_count"`
	Shortage    float64 `json:"shortage"` // revenue / (review count + 1)
}

// ValueEntry is one row of the value-for-money listing.
type ValueEntry struct {
	Rank        int     `json:"rank"`
	Name        string  `json:"name"`
	BasePrice   float64 `json:"base_price"`
	ReviewScore float64 `json:"review_score"`
	ValueScore  float64 `json:"value_score"`
}

// SummaryStats describes the revenue distribution for one period after
// total-row exclusion and positive-revenue filtering.
type SummaryStats struct {
	Period string  `json:"period"`
	Total  float64 `json:"total"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Max    float64 `json:"max"`
	Min    float64 `json:"min"`
	Count  int     `json:"count"`
	P90    float64 `json:"p90"`
}
