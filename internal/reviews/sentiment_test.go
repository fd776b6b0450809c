package reviews

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storelens/internal/dataset"
	"storelens/internal/textkit"
)

func newTestClassifier() *Classifier {
	return NewClassifier(textkit.NewSegmenter(), nil, nil)
}

func TestClassifierScore(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		name  string
		input any
		check func(t *testing.T, score float64)
	}{
		{
			name:  "positive keywords dominate",
			input: "배송이 빨라요 좋아요",
			check: func(t *testing.T, score float64) { assert.Greater(t, score, 0.3) },
		},
		{
			name:  "negative keywords dominate",
			input: "맛없어요 별로예요",
			check: func(t *testing.T, score float64) { assert.Less(t, score, -0.3) },
		},
		{
			name:  "no keyword hits scores zero",
			input: "그냥 보통이에요",
			check: func(t *testing.T, score float64) { assert.Zero(t, score) },
		},
		{
			name:  "mixed keywords cancel out",
			input: "좋아요 별로",
			check: func(t *testing.T, score float64) {
				assert.GreaterOrEqual(t, score, -0.3)
				assert.LessOrEqual(t, score, 0.3)
			},
		},
		{
			name:  "empty text scores zero",
			input: "",
			check: func(t *testing.T, score float64) { assert.Zero(t, score) },
		},
		{
			name:  "non-string input scores zero",
			input: 4.5,
			check: func(t *testing.T, score float64) { assert.Zero(t, score) },
		},
		{
			name:  "hangul-free text without keyword hits scores zero",
			input: "great product, highly recommended",
			check: func(t *testing.T, score float64) { assert.Zero(t, score) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := c.Score(tt.input)
			assert.GreaterOrEqual(t, score, -1.0)
			assert.LessOrEqual(t, score, 1.0)
			tt.check(t, score)
		})
	}
}

func TestEnglishFallbackIsOptIn(t *testing.T) {
	text := "great product, highly recommended"

	// Without the fallback the keyword formula is authoritative: no hits,
	// score 0, neutral.
	plain := newTestClassifier()
	assert.Zero(t, plain.Score(text))
	assert.Equal(t, Neutral, LabelFor(plain.Score(text)))

	enabled := newTestClassifier().WithEnglishFallback()
	score := enabled.Score(text)
	assert.Greater(t, score, 0.0)
	assert.LessOrEqual(t, score, 1.0)

	// Hangul text still goes through the keyword formula.
	assert.Greater(t, enabled.Score("배송이 빨라요 좋아요"), 0.3)
}

func TestLabelFor(t *testing.T) {
	tests := []struct {
		score float64
		want  Label
	}{
		{0.5, Positive},
		{0.301, Positive},
		{0.3, Neutral}, // boundary is exclusive
		{0.0, Neutral},
		{-0.3, Neutral},
		{-0.301, Negative},
		{-0.9, Negative},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LabelFor(tt.score), "score %v", tt.score)
	}
}

func TestClassify(t *testing.T) {
	c := newTestClassifier()
	table := reviewTable(
		"배송이 빨라요 좋아요",
		"맛없어요 별로예요",
		"그냥 보통이에요",
	)

	classified, counts := c.Classify(table, dataset.ColText)

	require.Len(t, classified.Rows, 3)
	assert.Equal(t, append([]string{dataset.ColText}, ColSentimentScore, ColSentiment), classified.Columns)

	// Tally appears in first-assignment order.
	assert.Equal(t, []LabelCount{
		{Label: Positive, Count: 1},
		{Label: Negative, Count: 1},
		{Label: Neutral, Count: 1},
	}, counts)

	assert.Equal(t, string(Positive), classified.Rows[0][ColSentiment])
	assert.Equal(t, string(Negative), classified.Rows[1][ColSentiment])
	assert.Equal(t, string(Neutral), classified.Rows[2][ColSentiment])

	// The source table is untouched.
	_, hasScore := table.Rows[0][ColSentimentScore]
	assert.False(t, hasScore)
}

func TestClassifyUnscoreableRows(t *testing.T) {
	c := newTestClassifier()
	table := dataset.Table{
		Columns: []string{dataset.ColText},
		Rows: []dataset.Record{
			{dataset.ColText: 4.5}, // numeric cell
			{},                     // missing cell
		},
	}

	classified, counts := c.Classify(table, dataset.ColText)
	require.Len(t, classified.Rows, 2)
	for _, row := range classified.Rows {
		assert.Equal(t, 0.0, row[ColSentimentScore])
		assert.Equal(t, string(Neutral), row[ColSentiment])
	}
	assert.Equal(t, []LabelCount{{Label: Neutral, Count: 2}}, counts)
}

func TestClassifyEmptyTable(t *testing.T) {
	c := newTestClassifier()
	classified, counts := c.Classify(dataset.Table{Columns: []string{dataset.ColText}}, dataset.ColText)
	assert.Empty(t, classified.Rows)
	assert.Empty(t, counts)
}

func TestParseLabel(t *testing.T) {
	for _, valid := range []string{"positive", "neutral", "negative"} {
		label, ok := ParseLabel(valid)
		assert.True(t, ok)
		assert.Equal(t, Label(valid), label)
	}
	_, ok := ParseLabel("great")
	assert.False(t, ok)
}
