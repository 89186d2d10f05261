package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirst(t *testing.T) {
	v, ok := First([]string{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	n, ok := First([]int(nil))
	assert.False(t, ok)
	assert.Zero(t, n)
}
