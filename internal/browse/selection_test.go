package browse_test

import (
	"testing"

	"pickd/internal/browse"

	"github.com/stretchr/testify/assert"
)

func TestSelectionToggle(t *testing.T) {
	sel := browse.NewSelection()

	assert.False(t, sel.Contains("/tmp/a"))
	assert.Equal(t, 0, sel.Count())

	sel.Toggle("/tmp/a")
	assert.True(t, sel.Contains("/tmp/a"))
	assert.Equal(t, 1, sel.Count())

	// Toggling twice restores the prior state
	sel.Toggle("/tmp/a")
	assert.False(t, sel.Contains("/tmp/a"))
	assert.Equal(t, 0, sel.Count())
}

func TestSelectionTracksPathsIndependently(t *testing.T) {
	sel := browse.NewSelection()
	sel.Toggle("/tmp/a")
	sel.Toggle("/tmp/b")

	assert.Equal(t, 2, sel.Count())
	assert.True(t, sel.Contains("/tmp/a"))
	assert.True(t, sel.Contains("/tmp/b"))

	sel.Toggle("/tmp/a")
	assert.False(t, sel.Contains("/tmp/a"))
	assert.True(t, sel.Contains("/tmp/b"))
	assert.Equal(t, 1, sel.Count())
}

func TestSelectionPaths(t *testing.T) {
	sel := browse.NewSelection()
	assert.Empty(t, sel.Paths())

	sel.Toggle("/tmp/a")
	sel.Toggle("/tmp/b")
	assert.ElementsMatch(t, []string{"/tmp/a", "/tmp/b"}, sel.Paths())
}
