package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		// Identical strings
		{"", "", 0},
		{"div", "div", 0},

		// Empty vs non-empty
		{"", "abc", 3},
		{"abc", "", 3},

		// Single edits
		{"text", "test", 1},
		{"list", "lists", 1},
		{"image", "imag", 1},

		// Multiple edits
		{"kitten", "sitting", 3},
		{"container", "contianer", 2},
		{"button", "bottom", 2},

		// Case-sensitive
		{"Text", "text", 1},

		// Runes, not bytes
		{"héllo", "hello", 1},
		{"日本", "日本語", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, Levenshtein(tt.a, tt.b))
			// Symmetric
			assert.Equal(t, tt.expected, Levenshtein(tt.b, tt.a))
		})
	}
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("", ""), 0.001)
	assert.InDelta(t, 1.0, Similarity("div", "div"), 0.001)
	assert.InDelta(t, 0.0, Similarity("abc", "xyz"), 0.001)
	assert.InDelta(t, 1.0-3.0/7.0, Similarity("kitten", "sitting"), 0.001)
}

func TestIdentSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, IdentSimilarity("listItem", "list-item"), 0.001)
	assert.InDelta(t, 1.0, IdentSimilarity("TextInput", "text_input"), 0.001)
	assert.Greater(t, IdentSimilarity("contaner", "container"), 0.8)
	assert.Less(t, IdentSimilarity("video", "separator"), 0.5)
}

func BenchmarkLevenshtein(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Levenshtein("navigationLink", "navLink")
	}
}
