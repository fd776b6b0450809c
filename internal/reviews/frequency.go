package reviews

import (
	"sort"
	"strings"

	"storelens/internal/dataset"
	"storelens/internal/textkit"
)

// WordFrequency is one entry of the review word-frequency table.
type WordFrequency struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Frequencies builds the word-frequency table over every non-empty text
// cell in the table. Entries are returned in first-occurrence order, which
// makes the table reproducible for identical input.
func Frequencies(t dataset.Table, textCol string, seg *textkit.Segmenter, stops *textkit.StopwordSet) []WordFrequency {
	var b strings.Builder
	for _, row := range t.Rows {
		text, ok := row.Text(textCol)
		if !ok || text == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(text)
	}

	tokens := textkit.ExtractTokens(b.String(), seg, stops)
	counts := make(map[string]int, len(tokens))
	var order []string
	for _, tok := range tokens {
		if _, seen := counts[tok]; !seen {
			order = append(order, tok)
		}
		counts[tok]++
	}

	out := make([]WordFrequency, 0, len(order))
	for _, w := range order {
		out = append(out, WordFrequency{Word: w, Count: counts[w]})
	}
	return out
}

// TopWords returns the n highest-count entries, ordered by descending count
// with ties broken by first-occurrence order. The input slice is not
// modified.
func TopWords(freqs []WordFrequency, n int) []WordFrequency {
	sorted := make([]WordFrequency, len(freqs))
	copy(sorted, freqs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Count > sorted[j].Count
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}
