package exporter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storelens/internal/options"
	"storelens/internal/reviews"
	"storelens/internal/sales"
)

func TestWriteSimpleCSV(t *testing.T) {
	dir := t.TempDir()
	w := NewCSVWriter(dir, nil)

	err := w.WriteSimpleCSV("out.csv",
		[]string{"word", "count"},
		[][]string{{"좋아요", "3"}, {"배송", "2"}},
	)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "out.csv"))
	require.NoError(t, err)

	// BOM prefix for Excel, then headers and records.
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, data[:3])
	assert.Contains(t, string(data), "word,count\n")
	assert.Contains(t, string(data), "좋아요,3\n")
}

func TestWriteCSVCreatesNestedDirectories(t *testing.T) {
	dir := t.TempDir()
	w := NewCSVWriter(dir, nil)

	err := w.WriteCSV(filepath.Join("nested", "deep", "out.csv"), WriteOptions{
		Headers: []string{"a"},
		Records: [][]string{{"1"}},
	})
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "nested", "deep", "out.csv"))
	assert.NoError(t, err)
}

func TestFrequencyReport(t *testing.T) {
	headers, records := FrequencyReport([]reviews.WordFrequency{{Word: "좋아요", Count: 3}})
	assert.Equal(t, []string{"word", "count"}, headers)
	assert.Equal(t, [][]string{{"좋아요", "3"}}, records)
}

func TestSentimentReport(t *testing.T) {
	headers, records := SentimentReport([]reviews.LabelCount{{Label: reviews.Positive, Count: 2}})
	assert.Equal(t, []string{"sentiment", "count"}, headers)
	assert.Equal(t, [][]string{{"positive", "2"}}, records)
}

func TestCategoryReport(t *testing.T) {
	_, records := CategoryReport([]reviews.CategoryResult{{
		Category:    "배송",
		ReviewCount: 2,
		Percentage:  66.7,
		TopKeywords: []string{"배송(2)", "빠른(1)"},
	}})
	require.Len(t, records, 1)
	assert.Equal(t, []string{"배송", "2", "66.7", "배송(2) 빠른(1)"}, records[0])
}

func TestOptionReport(t *testing.T) {
	_, records := OptionReport([]options.RankedOption{{Rank: 1, Label: "매운맛", Count: 5}})
	assert.Equal(t, [][]string{{"1", "매운맛", "5"}}, records)
}

func TestSummaryReport(t *testing.T) {
	headers, records := SummaryReport([]sales.SummaryStats{{
		Period: "1m", Total: 1500, Mean: 750, Median: 750,
		Max: 1000, Min: 500, Count: 2, P90: 950,
	}})
	assert.Equal(t, []string{"period", "total", "mean", "median", "max", "min", "count", "p90"}, headers)
	require.Len(t, records, 1)
	assert.Equal(t, "1m", records[0][0])
	assert.Equal(t, "1500", records[0][1])
	assert.Equal(t, "2", records[0][6])
}
