package textkit

import (
	"strings"
	"unicode/utf8"
)

// Segmenter splits normalized Korean text into morphemes. Korean eojeol
// (space-delimited chunks) agglutinate a content stem with postpositions
// (josa) and copula endings; the segmenter peels a single trailing
// functional suffix off each chunk so keyword matching operates on whole
// morphemes. The suffix tables are fixed, which keeps segmentation fully
// deterministic.
type Segmenter struct {
	suffixes []string // longest-first
	isSuffix map[string]struct{}
}

// Postpositions and copula endings recognized as trailing functional
// morphemes. Longer suffixes are tried first so 에서 wins over 서.
var functionalSuffixes = []string{
	"입니다", "습니다", "이에요",
	"에서", "으로", "부터", "까지", "처럼", "보다", "하고", "이랑", "이나", "예요", "에요",
	"이", "가", "은", "는", "을", "를", "에", "의", "과", "와", "도", "만", "로", "랑", "나",
}

// NewSegmenter returns a segmenter with the built-in suffix tables.
func NewSegmenter() *Segmenter {
	s := &Segmenter{
		suffixes: functionalSuffixes,
		isSuffix: make(map[string]struct{}, len(functionalSuffixes)),
	}
	for _, suf := range functionalSuffixes {
		s.isSuffix[suf] = struct{}{}
	}
	return s
}

// Morphs returns the full morpheme stream of already-normalized text:
// each chunk's stem followed by its stripped suffix, in occurrence order.
// Non-Hangul chunks are lowercased and emitted whole.
func (s *Segmenter) Morphs(normalized string) []string {
	if normalized == "" {
		return nil
	}
	var out []string
	for _, chunk := range strings.Fields(normalized) {
		if !isHangulWord(chunk) {
			out = append(out, strings.ToLower(chunk))
			continue
		}
		stem, suffix := s.split(chunk)
		out = append(out, stem)
		if suffix != "" {
			out = append(out, suffix)
		}
	}
	return out
}

// Nouns returns the noun-like content stems of already-normalized text:
// the morpheme stream minus functional suffixes, in occurrence order with
// duplicates retained.
func (s *Segmenter) Nouns(normalized string) []string {
	var out []string
	for _, m := range s.Morphs(normalized) {
		if _, functional := s.isSuffix[m]; functional && isHangulWord(m) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// split peels at most one functional suffix off a Hangul chunk. A chunk
// that is itself a suffix stays whole, as does a chunk whose stem would
// shrink below two syllables: content words like 별로 or 불만 end in
// josa-shaped syllables and must survive intact for keyword matching.
func (s *Segmenter) split(chunk string) (stem, suffix string) {
	if _, whole := s.isSuffix[chunk]; whole {
		return chunk, ""
	}
	for _, suf := range s.suffixes {
		if rest, ok := strings.CutSuffix(chunk, suf); ok && utf8.RuneCountInString(rest) >= 2 {
			return rest, suf
		}
	}
	return chunk, ""
}

// ExtractTokens implements the token extraction contract: normalize the raw
// value, extract noun-like stems, then drop stopwords and single-character
// tokens. Order of occurrence is preserved and duplicates are retained for
// frequency counting.
func ExtractTokens(v any, seg *Segmenter, stops *StopwordSet) []string {
	normalized := Normalize(v)
	if normalized == "" {
		return nil
	}
	var out []string
	for _, tok := range seg.Nouns(normalized) {
		if utf8.RuneCountInString(tok) <= 1 {
			continue
		}
		if stops != nil && stops.Contains(tok) {
			continue
		}
		out = append(out, tok)
	}
	return out
}
