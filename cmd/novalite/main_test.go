package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_ExitCodes(t *testing.T) {
	dir := t.TempDir()

	// stdin under go test is not a terminal and ends immediately
	good := filepath.Join(dir, "good.db")
	assert.Equal(t, 0, run([]string{"--history", "", good}))
	_, err := os.Stat(good)
	require.NoError(t, err)

	corrupt := filepath.Join(dir, "corrupt.db")
	require.NoError(t, os.WriteFile(corrupt, []byte("short"), 0o644))
	assert.Equal(t, 1, run([]string{"--history", "", corrupt}))

	assert.Equal(t, 2, run([]string{"--no-such-flag"}))
	assert.Equal(t, 1, run([]string{"--config", filepath.Join(dir, "missing.yaml")}))
}
