package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_DefaultsToWarn(t *testing.T) {
	lg, err := New(Config{})
	require.NoError(t, err)
	require.False(t, lg.Core().Enabled(zap.InfoLevel))
	require.True(t, lg.Core().Enabled(zap.WarnLevel))
}

func TestNew_BadLevelFallsBack(t *testing.T) {
	lg, err := New(Config{Level: "chatty"})
	require.NoError(t, err)
	require.True(t, lg.Core().Enabled(zap.WarnLevel))
	require.False(t, lg.Core().Enabled(zap.DebugLevel))
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "novalite.log")

	lg, err := New(Config{Level: "debug", Format: "json", Output: path})
	require.NoError(t, err)

	lg.Debug("pager opened", zap.String("path", "users.db"))
	require.NoError(t, lg.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"msg":"pager opened"`)
	require.Contains(t, string(data), `"service":"novalite"`)
}

func TestNew_BadFileOutput(t *testing.T) {
	_, err := New(Config{Output: filepath.Join(t.TempDir(), "missing", "x.log")})
	require.Error(t, err)
}
