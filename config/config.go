// Package config loads chatview configuration.
//
// Sources, highest precedence first:
//  1. environment variables (CHATVIEW_AVATAR, CHATVIEW_SNAPSHOT, CHATVIEW_LOCALE_DIR, CHATVIEW_LOG_LEVEL)
//  2. the file passed to Load, or ~/.config/chatview/config.yaml
//  3. built-in defaults
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/chatview"
	"gopkg.in/yaml.v3"
)

// Config is the full chatview configuration.
type Config struct {
	// Avatar is the user's avatar preference. Empty means the default avatar.
	Avatar string `yaml:"avatar"`

	// Snapshot is the store snapshot read by the CLI.
	Snapshot string `yaml:"snapshot"`

	// LocaleDir holds YAML namespaces overriding the built-in translations.
	LocaleDir string `yaml:"locale_dir"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Snapshot: "chatview.json",
		LogLevel: "warn",
	}
}

// DefaultPath returns ~/.config/chatview/config.yaml, or "" when the home
// directory cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "chatview", "config.yaml")
}

// Load reads the config file at path and applies environment overrides.
// An empty path means DefaultPath. A missing default file is not an error;
// a missing explicit file is.
func Load(path string, getenv func(string) string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("invalid config file %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist) && !explicit:
			// No config file; defaults apply.
		default:
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	applyEnvOverrides(cfg, getenv)

	if _, err := cfg.Level(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config, getenv func(string) string) {
	if v := getenv("CHATVIEW_AVATAR"); v != "" {
		cfg.Avatar = v
	}
	if v := getenv("CHATVIEW_SNAPSHOT"); v != "" {
		cfg.Snapshot = v
	}
	if v := getenv("CHATVIEW_LOCALE_DIR"); v != "" {
		cfg.LocaleDir = v
	}
	if v := getenv("CHATVIEW_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, chatview.ErrValidation)
	}
	return level, nil
}

// Settings returns the user settings described by the config.
func (c *Config) Settings() chatview.Settings {
	return chatview.Settings{Avatar: c.Avatar}
}
