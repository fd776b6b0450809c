package sales

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storelens/internal/dataset"
)

func TestReviewSalesCorrelation(t *testing.T) {
	table := salesTable(
		product("a", 100, dataset.Record{dataset.ColReviewScore: 2.5, dataset.ColReviewCount: 5.0}),
		product("b", 200, dataset.Record{dataset.ColReviewScore: 3.5, dataset.ColReviewCount: 10.0}),
		product("c", 300, dataset.Record{dataset.ColReviewScore: 4.2, dataset.ColReviewCount: 20.0}),
		product("d", 400, dataset.Record{dataset.ColReviewScore: 4.8, dataset.ColReviewCount: 40.0}),
	)

	result := ReviewSalesCorrelation(table, dataset.Period1M)
	assert.Equal(t, 4, result.Samples)
	assert.Greater(t, result.Coefficient, 0.9, "revenue rises with score")

	require.Len(t, result.Buckets, 4)
	assert.Equal(t, "3.0 미만", result.Buckets[0].Label)
	assert.Equal(t, 1, result.Buckets[0].ProductCount)
	assert.Equal(t, 100.0, result.Buckets[0].MeanRevenue)
	assert.Equal(t, 5.0, result.Buckets[0].MeanReviewCount)

	assert.Equal(t, "4.5~5.0", result.Buckets[3].Label)
	assert.Equal(t, 1, result.Buckets[3].ProductCount)
	assert.Equal(t, 400.0, result.Buckets[3].MeanRevenue)
}

func TestReviewSalesCorrelationTooFewSamples(t *testing.T) {
	table := salesTable(
		product("a", 100, dataset.Record{dataset.ColReviewScore: 4.0}),
	)
	result := ReviewSalesCorrelation(table, dataset.Period1M)
	assert.Zero(t, result.Coefficient)
	assert.Zero(t, result.Samples)
	assert.Empty(t, result.Buckets)
	assert.NotNil(t, result.Buckets)
}

func TestReviewSalesCorrelationMissingColumns(t *testing.T) {
	table := dataset.Table{Columns: []string{dataset.ColProductName}}
	result := ReviewSalesCorrelation(table, dataset.Period1M)
	assert.Empty(t, result.Buckets)
	assert.NotNil(t, result.Buckets)
}

func TestReviewSalesCorrelationExcludesTotalsAndZeroRevenue(t *testing.T) {
	table := salesTable(
		product("a", 100, dataset.Record{dataset.ColReviewScore: 3.0}),
		product("b", 200, dataset.Record{dataset.ColReviewScore: 4.0}),
		product("합계", 300, dataset.Record{dataset.ColReviewScore: 5.0}),
		product("c", 0, dataset.Record{dataset.ColReviewScore: 4.9}),
	)
	result := ReviewSalesCorrelation(table, dataset.Period1M)
	assert.Equal(t, 2, result.Samples)
}
