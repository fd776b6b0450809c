package dataset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCSV(t *testing.T) {
	csv := "상품명,1개월 매출,리뷰점수\n김치,\"1,000\",4.5\n라면,2000,3.8\n"

	table, err := LoadCSV(strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, []string{"상품명", "1개월 매출", "리뷰점수"}, table.Columns)
	require.Len(t, table.Rows, 2)

	// Comma-separated numbers parse as float64.
	revenue, ok := table.Rows[0].Float("1개월 매출")
	require.True(t, ok)
	assert.Equal(t, 1000.0, revenue)

	name, ok := table.Rows[0].Text("상품명")
	require.True(t, ok)
	assert.Equal(t, "김치", name)
}

func TestLoadCSVStripsBOM(t *testing.T) {
	csv := "\uFEFF리뷰내용\n좋아요\n"

	table, err := LoadCSV(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, []string{"리뷰내용"}, table.Columns)
}

func TestLoadCSVSkipsEmptyRows(t *testing.T) {
	csv := "리뷰내용,점수\n좋아요,5\n,\n별로,1\n"

	table, err := LoadCSV(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Len(t, table.Rows, 2)
}

func TestLoadCSVNoDataRows(t *testing.T) {
	_, err := LoadCSV(strings.NewReader("리뷰내용\n"))
	assert.Error(t, err)
}

func TestLoadDispatchesByExtension(t *testing.T) {
	table, err := Load(strings.NewReader("리뷰내용\n좋아요\n"), "reviews.CSV")
	require.NoError(t, err)
	assert.Len(t, table.Rows, 1)

	_, err = Load(strings.NewReader("x"), "reviews.pdf")
	assert.Error(t, err)
}

func TestRecordFloat(t *testing.T) {
	rec := Record{
		"float":  12.5,
		"string": "1,234.5",
		"text":   "좋아요",
	}

	v, ok := rec.Float("float")
	assert.True(t, ok)
	assert.Equal(t, 12.5, v)

	v, ok = rec.Float("string")
	assert.True(t, ok)
	assert.Equal(t, 1234.5, v)

	_, ok = rec.Float("text")
	assert.False(t, ok)

	_, ok = rec.Float("absent")
	assert.False(t, ok)
}

func TestRecordClone(t *testing.T) {
	rec := Record{"a": 1.0}
	clone := rec.Clone()
	clone["b"] = 2.0

	_, ok := rec["b"]
	assert.False(t, ok)
}

func TestTableFilter(t *testing.T) {
	table := Table{
		Columns: []string{"n"},
		Rows:    []Record{{"n": 1.0}, {"n": 2.0}, {"n": 3.0}},
	}
	kept := table.Filter(func(r Record) bool {
		v, _ := r.Float("n")
		return v > 1
	})
	assert.Equal(t, table.Columns, kept.Columns)
	assert.Len(t, kept.Rows, 2)
}
