package reviews

import (
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v2"

	"storelens/internal/dataset"
)

// Category is a named group of trigger keywords within one sentiment bucket.
type Category struct {
	Name     string   `yaml:"name" json:"name"`
	Keywords []string `yaml:"keywords" json:"keywords"`
}

// CategoryTable maps each sentiment bucket to its ordered category list.
// The zero value has no categories; use DefaultCategoryTable or
// LoadCategoryTable.
type CategoryTable struct {
	Positive []Category `yaml:"positive"`
	Neutral  []Category `yaml:"neutral"`
	Negative []Category `yaml:"negative"`
}

// ForLabel returns the category list for the given sentiment bucket.
func (ct CategoryTable) ForLabel(label Label) []Category {
	switch label {
	case Positive:
		return ct.Positive
	case Neutral:
		return ct.Neutral
	case Negative:
		return ct.Negative
	default:
		return nil
	}
}

// LoadCategoryTable reads a category table override from a YAML file. Buckets
// absent from the file keep the built-in defaults, so a deployment can retune
// a single sentiment without restating the others.
func LoadCategoryTable(path string) (CategoryTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CategoryTable{}, fmt.Errorf("failed to read category table: %w", err)
	}
	table := DefaultCategoryTable()
	var override CategoryTable
	if err := yaml.Unmarshal(data, &override); err != nil {
		return CategoryTable{}, fmt.Errorf("failed to parse category table: %w", err)
	}
	if override.Positive != nil {
		table.Positive = override.Positive
	}
	if override.Neutral != nil {
		table.Neutral = override.Neutral
	}
	if override.Negative != nil {
		table.Negative = override.Negative
	}
	return table, nil
}

// Matcher decides whether a review text mentions a keyword. The default
// substring strategy deliberately over-matches inside compound words; a
// stricter tokenized matcher can be swapped in without touching the
// aggregation below.
type Matcher interface {
	Matches(text, keyword string) bool
}

// SubstringMatcher matches case-insensitive substrings.
type SubstringMatcher struct{}

// Matches reports whether keyword occurs anywhere in text, ignoring case.
func (SubstringMatcher) Matches(text, keyword string) bool {
	return strings.Contains(strings.ToLower(text), strings.ToLower(keyword))
}

// CategoryResult is one row of the per-category breakdown for a sentiment
// bucket.
type CategoryResult struct {
	Category    string   `json:"category"`
	ReviewCount int      `json:"review_count"`
	Percentage  float64  `json:"percentage"`
	TopKeywords []string `json:"top_keywords"`
}

// maxTopKeywords caps the "top mentioned keywords" listing per category.
const maxTopKeywords = 10

// AnalyzeCategories breaks the reviews carrying the target sentiment down by
// category. For each category with at least one matching review it reports
// the match count, its percentage of the sentiment subset (one decimal), and
// the ten most mentioned keywords formatted as "keyword(count)". Keyword
// counts are computed across the full sentiment subset, not just the
// category's matches. Results sort by review count descending; ties keep
// category table order. An empty sentiment subset yields an empty, non-nil
// result.
func AnalyzeCategories(t dataset.Table, textCol string, label Label, categories []Category, m Matcher) []CategoryResult {
	if m == nil {
		m = SubstringMatcher{}
	}

	var subset []string
	for _, row := range t.Rows {
		got, ok := row.Text(ColSentiment)
		if !ok || got != string(label) {
			continue
		}
		text, _ := row.Text(textCol)
		subset = append(subset, text)
	}

	results := []CategoryResult{}
	if len(subset) == 0 {
		return results
	}
	total := len(subset)

	for _, cat := range categories {
		matched := 0
		for _, text := range subset {
			for _, kw := range cat.Keywords {
				if m.Matches(text, kw) {
					matched++
					break
				}
			}
		}
		if matched == 0 {
			continue
		}

		type keywordHit struct {
			keyword string
			count   int
		}
		var hits []keywordHit
		for _, kw := range cat.Keywords {
			count := 0
			for _, text := range subset {
				if m.Matches(text, kw) {
					count++
				}
			}
			if count > 0 {
				hits = append(hits, keywordHit{keyword: kw, count: count})
			}
		}
		sort.SliceStable(hits, func(i, j int) bool { return hits[i].count > hits[j].count })
		if len(hits) > maxTopKeywords {
			hits = hits[:maxTopKeywords]
		}
		top := make([]string, 0, len(hits))
		for _, h := range hits {
			top = append(top, fmt.Sprintf("%s(%d)", h.keyword, h.count))
		}

		results = append(results, CategoryResult{
			Category:    cat.Name,
			ReviewCount: matched,
			Percentage:  math.Round(float64(matched)/float64(total)*1000) / 10,
			TopKeywords: top,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].ReviewCount > results[j].ReviewCount
	})
	return results
}
