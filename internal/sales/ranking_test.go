package sales

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storelens/internal/dataset"
)

// salesTable builds a canonical-schema sales table for tests.
func salesTable(rows ...dataset.Record) dataset.Table {
	return dataset.Table{
		Columns: []string{
			dataset.ColProductName,
			dataset.Period1M.Column(),
			dataset.ColBasePrice,
			dataset.ColReviewScore,
			dataset.ColReviewCount,
		},
		Rows: rows,
	}
}

func product(name string, revenue float64, extra dataset.Record) dataset.Record {
	rec := dataset.Record{
		dataset.ColProductName:    name,
		dataset.Period1M.Column(): revenue,
	}
	for k, v := range extra {
		rec[k] = v
	}
	return rec
}

func TestTopProducts(t *testing.T) {
	table := salesTable(
		product("저조", 100, nil),
		product("최고", 900, dataset.Record{dataset.ColBasePrice: 50.0}),
		product("중간", 500, nil),
		product("전체 합계", 1500, nil), // total row never ranks
		product("무매출", 0, nil),      // zero revenue excluded
	)

	ranked := TopProducts(table, dataset.Period1M, DefaultTopN)
	require.Len(t, ranked, 3)
	assert.Equal(t, "최고", ranked[0].Name)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, 50.0, ranked[0].BasePrice)
	assert.Equal(t, "중간", ranked[1].Name)
	assert.Equal(t, "저조", ranked[2].Name)
	assert.Equal(t, 3, ranked[2].Rank)
}

func TestTopProductsLimit(t *testing.T) {
	var rows []dataset.Record
	for i := 1; i <= 15; i++ {
		rows = append(rows, product(fmt.Sprintf("상품%d", i), float64(i*100), nil))
	}

	ranked := TopProducts(salesTable(rows...), dataset.Period1M, 5)
	require.Len(t, ranked, 5)
	assert.Equal(t, 1500.0, ranked[0].Revenue)
	assert.Equal(t, 1100.0, ranked[4].Revenue)
}

func TestTopProductsMissingPeriodColumn(t *testing.T) {
	table := salesTable(product("김치", 100, nil))
	ranked := TopProducts(table, dataset.Period2Y, DefaultTopN)
	assert.NotNil(t, ranked)
	assert.Empty(t, ranked)
}

func TestPriceEfficiency(t *testing.T) {
	table := salesTable(
		product("가성비", 1000, dataset.Record{dataset.ColBasePrice: 10.0}), // ratio 100
		product("고가", 2000, dataset.Record{dataset.ColBasePrice: 100.0}), // ratio 20
		product("무가격", 500, nil),
		product("TOTAL", 9999, dataset.Record{dataset.ColBasePrice: 1.0}),
	)

	entries := PriceEfficiency(table, dataset.Period1M)
	require.Len(t, entries, 2)
	assert.Equal(t, "가성비", entries[0].Name)
	assert.InDelta(t, 100.0, entries[0].Efficiency, 1e-9)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "고가", entries[1].Name)
}

func TestReviewEfficiency(t *testing.T) {
	table := salesTable(
		product("효율", 1000, dataset.Record{dataset.ColReviewCount: 10.0}), // 100 per review
		product("저효율", 300, dataset.Record{dataset.ColReviewCount: 30.0}), // 10 per review
		product("무리뷰", 500, dataset.Record{dataset.ColReviewCount: 0.0}),  // excluded
	)

	entries := ReviewEfficiency(table, dataset.Period1M)
	require.Len(t, entries, 2)
	assert.Equal(t, "효율", entries[0].Name)
	assert.InDelta(t, 100.0, entries[0].RevenuePerReview, 1e-9)
	assert.Equal(t, "저효율", entries[1].Name)
}
