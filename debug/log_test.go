package debug

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "debug.log")
	require.NoError(t, EnableAt(path))
	t.Cleanup(Disable)
	assert.True(t, Enabled())

	Log("points", "insert #%d", 3)
	for i := 0; i < 4; i++ {
		LogEvery(2, "notes", "move")
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "Debug logging started")
	assert.Contains(t, out, "insert #3")
	assert.Contains(t, out, "move (every 2, count=2)")
	assert.Contains(t, out, "move (every 2, count=4)")
}

func TestLogDisabledIsNoop(t *testing.T) {
	Disable()
	assert.False(t, Enabled())
	Log("session", "dropped")
}

func TestOnlyFiltersCategories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	require.NoError(t, EnableAt(path))
	t.Cleanup(func() {
		Only()
		Disable()
	})

	Only(CatHistory)
	Log(CatPoints, "hidden")
	Log(CatHistory, "shown")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}
