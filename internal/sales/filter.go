package sales

import (
	"strings"

	"storelens/internal/dataset"
)

// totalRowMarkers identify synthetic grand-total rows that some storefront
// exports append. Leaving one in corrupts every downstream ranking and
// quantile, so exclusion runs before every operation in this package.
var totalRowMarkers = []string{"total", "합계", "전체", "총계"}

// ExcludeTotals drops every row whose product name contains one of the
// total-row markers, case-insensitive.
func ExcludeTotals(t dataset.Table) dataset.Table {
	return t.Filter(func(row dataset.Record) bool {
		name, ok := row.Text(dataset.ColProductName)
		if !ok {
			return true
		}
		lower := strings.ToLower(name)
		for _, marker := range totalRowMarkers {
			if strings.Contains(lower, marker) {
				return false
			}
		}
		return true
	})
}
