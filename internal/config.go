package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tuannm99/novalite/pkg/logger"
)

type NovaLiteConfig struct {
	AppName string `mapstructure:"app_name"`

	Storage struct {
		// Path of the db file; empty means an in-memory table.
		Path string `mapstructure:"path"`
		Lock bool   `mapstructure:"lock"`
	} `mapstructure:"storage"`

	Log logger.Config `mapstructure:"log"`

	REPL struct {
		Prompt      string `mapstructure:"prompt"`
		HistoryFile string `mapstructure:"history_file"`
		HistoryMax  int    `mapstructure:"history_max"`
	} `mapstructure:"repl"`
}

// flag name -> config key
var flagKeys = map[string]string{
	"lock":       "storage.lock",
	"log-level":  "log.level",
	"log-format": "log.format",
	"log-output": "log.output",
	"history":    "repl.history_file",
}

// RegisterFlags adds the command line flags understood by LoadConfigWithFlags.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a YAML config file")
	fs.Bool("lock", false, "take an exclusive advisory lock on the db file")
	fs.String("log-level", "warn", "log level (debug, info, warn, error)")
	fs.String("log-format", "console", "log format (console, json)")
	fs.String("log-output", "stderr", "log output (stderr, stdout or a file path)")
	fs.String("history", defaultHistoryPath(), "REPL history file, empty to disable")
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("app_name", "novalite")
	v.SetDefault("storage.path", "")
	v.SetDefault("storage.lock", false)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stderr")
	v.SetDefault("repl.prompt", "db > ")
	v.SetDefault("repl.history_file", defaultHistoryPath())
	v.SetDefault("repl.history_max", 2000)

	// NOVALITE_LOG_LEVEL overrides log.level, and so on.
	v.SetEnvPrefix("NOVALITE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfig reads defaults, the optional YAML file at path, and env overrides.
func LoadConfig(path string) (*NovaLiteConfig, error) {
	return load(newViper(), path)
}

// LoadConfigWithFlags is LoadConfig plus flags registered by RegisterFlags.
// Flags set on the command line win over the file and env.
func LoadConfigWithFlags(fs *pflag.FlagSet) (*NovaLiteConfig, error) {
	v := newViper()
	for name, key := range flagKeys {
		if f := fs.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	path, err := fs.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("read config flag: %w", err)
	}
	return load(v, path)
}

func load(v *viper.Viper, path string) (*NovaLiteConfig, error) {
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg NovaLiteConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".novalite_history"
	}
	return filepath.Join(home, ".novalite_history")
}
