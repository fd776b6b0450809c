package reviews

import (
	"github.com/jonreiter/govader"

	"storelens/internal/dataset"
	"storelens/internal/textkit"
)

// Label is a sentiment bucket assigned to a review.
type Label string

const (
	// Positive marks reviews with score > 0.3.
	Positive Label = "positive"
	// Neutral marks reviews with score in [-0.3, 0.3].
	Neutral Label = "neutral"
	// Negative marks reviews with score < -0.3.
	Negative Label = "negative"
)

// ParseLabel resolves a request parameter to a Label.
func ParseLabel(s string) (Label, bool) {
	switch Label(s) {
	case Positive, Neutral, Negative:
		return Label(s), true
	}
	return "", false
}

// Derived columns attached to classified review tables.
const (
	ColSentimentScore = "sentiment_score"
	ColSentiment      = "sentiment"
)

const (
	// scoreEpsilon keeps the score denominator positive when a review hits
	// no keyword at all, yielding score 0.
	scoreEpsilon = 0.001
	// positiveThreshold and negativeThreshold bound the neutral band.
	positiveThreshold = 0.3
	negativeThreshold = -0.3
)

// LabelCount is one row of the per-label tally produced by Classify.
type LabelCount struct {
	Label Label `json:"sentiment"`
	Count int   `json:"count"`
}

// Classifier assigns sentiment scores and labels by counting keyword hits
// in the morpheme stream.
type Classifier struct {
	seg      *textkit.Segmenter
	positive map[string]struct{}
	negative map[string]struct{}
	english  *govader.SentimentIntensityAnalyzer
}

// NewClassifier builds a classifier with the given keyword lists. Nil lists
// fall back to the defaults.
func NewClassifier(seg *textkit.Segmenter, positive, negative []string) *Classifier {
	if positive == nil {
		positive = defaultPositiveKeywords
	}
	if negative == nil {
		negative = defaultNegativeKeywords
	}
	c := &Classifier{
		seg:      seg,
		positive: make(map[string]struct{}, len(positive)),
		negative: make(map[string]struct{}, len(negative)),
	}
	for _, w := range positive {
		c.positive[w] = struct{}{}
	}
	for _, w := range negative {
		c.negative[w] = struct{}{}
	}
	return c
}

// WithEnglishFallback enables VADER's rule-based compound score for
// Hangul-free text. Off by default: the keyword formula is authoritative,
// and a review hitting no keyword scores 0 and classifies neutral whatever
// its language.
func (c *Classifier) WithEnglishFallback() *Classifier {
	c.english = govader.NewSentimentIntensityAnalyzer()
	return c
}

// Score computes the continuous sentiment score for one text value:
// (positive hits - negative hits) / (positive hits + negative hits + ε).
// Unscoreable input (missing, non-string, empty after normalization)
// scores 0. The result always lies in [-1, 1].
func (c *Classifier) Score(v any) float64 {
	normalized := textkit.Normalize(v)
	if normalized == "" {
		return 0
	}

	if c.english != nil && !textkit.ContainsHangul(normalized) {
		return c.english.PolarityScores(normalized).Compound
	}

	var pos, neg float64
	for _, morph := range c.seg.Morphs(normalized) {
		if _, ok := c.positive[morph]; ok {
			pos++
		}
		if _, ok := c.negative[morph]; ok {
			neg++
		}
	}
	return (pos - neg) / (pos + neg + scoreEpsilon)
}

// LabelFor maps a score to its sentiment bucket.
func LabelFor(score float64) Label {
	switch {
	case score > positiveThreshold:
		return Positive
	case score < negativeThreshold:
		return Negative
	default:
		return Neutral
	}
}

// Classify returns a copy of the table with sentiment_score and sentiment
// columns attached to every row, plus a per-label tally. Tally rows appear
// in the order each label was first assigned, so identical input always
// produces an identical table.
func (c *Classifier) Classify(t dataset.Table, textCol string) (dataset.Table, []LabelCount) {
	out := dataset.Table{
		Columns: append(append([]string{}, t.Columns...), ColSentimentScore, ColSentiment),
		Rows:    make([]dataset.Record, 0, len(t.Rows)),
	}

	counts := make(map[Label]int, 3)
	var order []Label
	for _, row := range t.Rows {
		var textValue any
		if text, ok := row.Text(textCol); ok {
			textValue = text
		}
		score := c.Score(textValue)
		label := LabelFor(score)

		classified := row.Clone()
		classified[ColSentimentScore] = score
		classified[ColSentiment] = string(label)
		out.Rows = append(out.Rows, classified)

		if _, seen := counts[label]; !seen {
			order = append(order, label)
		}
		counts[label]++
	}

	tally := make([]LabelCount, 0, len(order))
	for _, label := range order {
		tally = append(tally, LabelCount{Label: label, Count: counts[label]})
	}
	return out, tally
}
