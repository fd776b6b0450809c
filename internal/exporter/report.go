package exporter

import (
	"strconv"

	"storelens/internal/options"
	"storelens/internal/reviews"
	"storelens/internal/sales"
)

// FrequencyReport formats a word-frequency table for CSV export.
func FrequencyReport(freqs []reviews.WordFrequency) ([]string, [][]string) {
	headers := []string{"word", "count"}
	records := make([][]string, 0, len(freqs))
	for _, f := range freqs {
		records = append(records, []string{f.Word, strconv.Itoa(f.Count)})
	}
	return headers, records
}

// SentimentReport formats a sentiment tally for CSV export.
func SentimentReport(counts []reviews.LabelCount) ([]string, [][]string) {
	headers := []string{"sentiment", "count"}
	records := make([][]string, 0, len(counts))
	for _, c := range counts {
		records = append(records, []string{string(c.Label), strconv.Itoa(c.Count)})
	}
	return headers, records
}

// CategoryReport formats a category breakdown for CSV export.
func CategoryReport(results []reviews.CategoryResult) ([]string, [][]string) {
	headers := []string{"category", "review_count", "percentage", "top_keywords"}
	records := make([][]string, 0, len(results))
	for _, c := range results {
		keywords := ""
		for i, kw := range c.TopKeywords {
			if i > 0 {
				keywords += " "
			}
			keywords += kw
		}
		records = append(records, []string{
			c.Category,
			strconv.Itoa(c.ReviewCount),
			formatFloat(c.Percentage),
			keywords,
		})
	}
	return headers, records
}

// OptionReport formats an option ranking for CSV export.
func OptionReport(ranked []options.RankedOption) ([]string, [][]string) {
	headers := []string{"rank", "option", "count"}
	records := make([][]string, 0, len(ranked))
	for _, o := range ranked {
		records = append(records, []string{
			strconv.Itoa(o.Rank),
			o.Label,
			formatFloat(o.Count),
		})
	}
	return headers, records
}

// TopProductReport formats a revenue ranking for CSV export.
func TopProductReport(ranked []sales.RankedProduct) ([]string, [][]string) {
	headers := []string{"rank", "product", "revenue", "base_price", "sale_count"}
	records := make([][]string, 0, len(ranked))
	for _, p := range ranked {
		records = append(records, []string{
			strconv.Itoa(p.Rank),
			p.Name,
			formatFloat(p.Revenue),
			formatFloat(p.BasePrice),
			formatFloat(p.SaleCount),
		})
	}
	return headers, records
}

// SummaryReport formats period summary statistics for CSV export.
func SummaryReport(stats []sales.SummaryStats) ([]string, [][]string) {
	headers := []string{"period", "total", "mean", "median", "max", "min", "count", "p90"}
	records := make([][]string, 0, len(stats))
	for _, s := range stats {
		records = append(records, []string{
			s.Period,
			formatFloat(s.Total),
			formatFloat(s.Mean),
			formatFloat(s.Median),
			formatFloat(s.Max),
			formatFloat(s.Min),
			strconv.Itoa(s.Count),
			formatFloat(s.P90),
		})
	}
	return headers, records
}

// SegmentReport formats price segments for CSV export.
func SegmentReport(segments []sales.PriceSegment) ([]string, [][]string) {
	headers := []string{"segment", "product_count", "mean_revenue", "total_revenue"}
	records := make([][]string, 0, len(segments))
	for _, s := range segments {
		records = append(records, []string{
			s.Label,
			strconv.Itoa(s.ProductCount),
			formatFloat(s.MeanRevenue),
			formatFloat(s.TotalRevenue),
		})
	}
	return headers, records
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
