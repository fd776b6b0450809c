package reviews

// Seed keyword lists for rule-based sentiment scoring. Matching is
// whole-morpheme, so entries are dictionary forms and common spoken forms.
var (
	defaultPositiveKeywords = []string{
		"좋다", "좋은", "좋아요", "만족", "최고", "추천", "맛있다", "편리하다", "빠르다", "친절하다",
	}
	defaultNegativeKeywords = []string{
		"나쁘다", "별로", "실망", "불만", "최악", "싫다", "아쉽다", "느리다", "불친절하다",
	}
)

// DefaultPositiveKeywords returns a copy of the positive keyword list.
func DefaultPositiveKeywords() []string {
	out := make([]string, len(defaultPositiveKeywords))
	copy(out, defaultPositiveKeywords)
	return out
}

// DefaultNegativeKeywords returns a copy of the negative keyword list.
func DefaultNegativeKeywords() []string {
	out := make([]string, len(defaultNegativeKeywords))
	copy(out, defaultNegativeKeywords)
	return out
}
