// Package options ranks product option rows by sale count.
package options

import (
	"sort"

	"storelens/internal/dataset"
)

// DefaultTopN is the standard ranking depth for option popularity.
const DefaultTopN = 10

// RankedOption is one row of the option popularity ranking.
type RankedOption struct {
	Rank  int     `json:"rank"`
	Label string  `json:"label"`
	Count float64 `json:"count"`
}

// TopOptions returns the n options with the highest sale counts, sorted
// descending. Ties keep the original row order, so the ranking is
// deterministic for identical input. Rows without a numeric count are
// skipped; a missing label or count column yields an empty, non-nil result.
func TopOptions(t dataset.Table, labelCol, countCol string, n int) []RankedOption {
	out := []RankedOption{}
	if !t.HasColumn(labelCol) || !t.HasColumn(countCol) {
		return out
	}

	for _, row := range t.Rows {
		count, ok := row.Float(countCol)
		if !ok {
			continue
		}
		label, _ := row.Text(labelCol)
		out = append(out, RankedOption{Label: label, Count: count})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}
