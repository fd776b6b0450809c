package textkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{
			name:  "strips punctuation and digits",
			input: "좋아요!! 123 최고!!!",
			want:  "좋아요 최고",
		},
		{
			name:  "collapses whitespace",
			input: "배송이   빨라요\t정말    좋아요",
			want:  "배송이 빨라요 정말 좋아요",
		},
		{
			name:  "trims leading and trailing space",
			input: "  상품 좋아요  ",
			want:  "상품 좋아요",
		},
		{
			name:  "keeps underscores and letters",
			input: "best_item 좋아요",
			want:  "best_item 좋아요",
		},
		{
			name:  "digits embedded in words become separators",
			input: "상품2개 샀어요",
			want:  "상품 개 샀어요",
		},
		{
			name:  "non-string input normalizes to empty",
			input: 4.5,
			want:  "",
		},
		{
			name:  "nil input normalizes to empty",
			input: nil,
			want:  "",
		},
		{
			name:  "punctuation-only input normalizes to empty",
			input: "!!! ... ???",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"좋아요!! 123 최고!!!",
		"배송이   빨라요",
		"Good product, fast delivery!",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "normalizing twice must equal normalizing once for %q", in)
	}
}

func TestContainsHangul(t *testing.T) {
	assert.True(t, ContainsHangul("good 좋아요"))
	assert.True(t, ContainsHangul("좋아요"))
	assert.False(t, ContainsHangul("good product"))
	assert.False(t, ContainsHangul(""))
}

func TestIsHangul(t *testing.T) {
	assert.True(t, IsHangul('가'))
	assert.True(t, IsHangul('힣'))
	assert.False(t, IsHangul('a'))
	assert.False(t, IsHangul('ㄱ')) // jamo, not a precomposed syllable
}
