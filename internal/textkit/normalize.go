package textkit

import (
	"strings"
	"unicode"
)

// Normalize prepares raw review text for tokenization: every character that
// is not a word character or whitespace becomes a space, digits become
// spaces, runs of whitespace collapse to one space, and the result is
// trimmed. Non-string input (missing cells, numeric cells) normalizes to "".
func Normalize(v any) string {
	text, ok := v.(string)
	if !ok {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	lastSpace := true
	for _, r := range text {
		switch {
		case unicode.IsDigit(r), !isWordRune(r) && !unicode.IsSpace(r), unicode.IsSpace(r):
			if !lastSpace {
				b.WriteRune(' ')
				lastSpace = true
			}
		default:
			b.WriteRune(r)
			lastSpace = false
		}
	}
	return strings.TrimSpace(b.String())
}

// isWordRune mirrors the \w character class: letters, digits and underscore.
// Digits are handled separately by Normalize since they are stripped too.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// IsHangul reports whether r is a precomposed Hangul syllable.
func IsHangul(r rune) bool {
	return r >= 0xAC00 && r <= 0xD7AF
}

// ContainsHangul reports whether s contains any Hangul syllable. Review
// exports occasionally mix English-only reviews into Korean data; callers
// use this to pick a scoring strategy.
func ContainsHangul(s string) bool {
	for _, r := range s {
		if IsHangul(r) {
			return true
		}
	}
	return false
}

func isHangulWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !IsHangul(r) {
			return false
		}
	}
	return true
}
