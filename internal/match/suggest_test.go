package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggest(t *testing.T) {
	known := []string{"button", "container", "image", "list", "listItem", "text", "textinput"}

	assert.Equal(t, []string{"container"}, Suggest("contaner", known, 3, DefaultMinSimilarity))
	assert.Equal(t, []string{"text"}, Suggest("txt", known, 2, DefaultMinSimilarity))
	assert.Empty(t, Suggest("carousel", known, 3, 0.9))
}

func TestSuggest_Limit(t *testing.T) {
	known := []string{"listA", "listB", "listC"}

	got := Suggest("list", known, 2, 0)
	assert.Equal(t, []string{"listA", "listB"}, got)

	assert.Len(t, Suggest("list", known, -1, 0), 3)
}
