package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "novalite", cfg.AppName)
	assert.Equal(t, "", cfg.Storage.Path)
	assert.False(t, cfg.Storage.Lock)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "stderr", cfg.Log.Output)
	assert.Equal(t, "db > ", cfg.REPL.Prompt)
	assert.Equal(t, 2000, cfg.REPL.HistoryMax)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "novalite.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
app_name: test
storage:
  path: /tmp/users.db
  lock: true
log:
  level: debug
  format: json
repl:
  history_file: ""
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.AppName)
	assert.Equal(t, "/tmp/users.db", cfg.Storage.Path)
	assert.True(t, cfg.Storage.Lock)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "", cfg.REPL.HistoryFile)
	// untouched keys keep defaults
	assert.Equal(t, "db > ", cfg.REPL.Prompt)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "read config")
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("NOVALITE_LOG_LEVEL", "error")
	t.Setenv("NOVALITE_STORAGE_LOCK", "true")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.True(t, cfg.Storage.Lock)
}

func TestLoadConfigWithFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "novalite.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: info\n"), 0o644))

	fs := pflag.NewFlagSet("novalite", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--config", path, "--lock", "--history", ""}))

	cfg, err := LoadConfigWithFlags(fs)
	require.NoError(t, err)

	// the file wins over flag defaults, explicit flags win over the file
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Storage.Lock)
	assert.Equal(t, "", cfg.REPL.HistoryFile)
}
