package repl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_AppendAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "history")

	h := NewHistory(path, 0)
	require.NoError(t, h.Load())
	assert.Empty(t, h.Lines())

	require.NoError(t, h.Append("insert 1 a b"))
	require.NoError(t, h.Append("   "))
	require.NoError(t, h.Append(" select "))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "insert 1 a b\nselect\n", string(data))

	h2 := NewHistory(path, 0)
	require.NoError(t, h2.Load())
	assert.Equal(t, []string{"insert 1 a b", "select"}, h2.Lines())
}

func TestHistory_Max(t *testing.T) {
	h := NewHistory("", 2)
	for _, s := range []string{"a", "b", "c"} {
		require.NoError(t, h.Append(s))
	}
	assert.Equal(t, []string{"b", "c"}, h.Lines())
}
