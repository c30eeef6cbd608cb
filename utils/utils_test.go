package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	t.Run("should keep short strings untouched", func(t *testing.T) {
		assert.Equal(t, "abc", Truncate("abc", 10))
	})

	t.Run("should append an ellipsis and respect the maximum length", func(t *testing.T) {
		res := Truncate("abcdefghij", 6)
		assert.Equal(t, "abc...", res)
		assert.Len(t, res, 6)
	})

	t.Run("should count runes, not bytes", func(t *testing.T) {
		assert.Equal(t, "äöü", Truncate("äöü", 3))
		assert.Equal(t, "ä...", Truncate("äöüßäöü", 4))
	})

	t.Run("should return an empty string for a non positive maximum", func(t *testing.T) {
		assert.Equal(t, "", Truncate("abc", 0))
	})
}

func TestChunk(t *testing.T) {
	t.Run("should split into chunks of the given size", func(t *testing.T) {
		chunks := Chunk([]int{1, 2, 3, 4, 5}, 2)
		assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, chunks)
	})

	t.Run("should return nil for an empty slice", func(t *testing.T) {
		assert.Nil(t, Chunk([]int{}, 2))
	})

	t.Run("should return a single chunk if size is not positive", func(t *testing.T) {
		assert.Equal(t, [][]int{{1, 2, 3}}, Chunk([]int{1, 2, 3}, 0))
	})
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "b", FirstNonEmpty("", "  ", "b", "c"))
	assert.Equal(t, "", FirstNonEmpty("", " "))
}

func TestSyncFireAndForgetSynchronizer(t *testing.T) {
	called := false
	NewSyncFireAndForgetSynchronizer().FireAndForget(func() {
		called = true
	})
	assert.True(t, called)
}
