package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Themes ThemesConfig
	State  StateConfig
	UI     UIConfig
	Log    LogConfig
}

// ThemesConfig says where theme files live and what to pick with no saved choice.
type ThemesConfig struct {
	Dir     string
	Default string
}

// StateConfig holds the selected-theme file location.
type StateConfig struct {
	Path string
}

// UIConfig holds presentation settings. Color is auto, always or never.
type UIConfig struct {
	Color string
}

// LogConfig controls diagnostics. An empty File means stderr.
type LogConfig struct {
	Level string
	File  string
}

// Load reads configuration from file and env. Env var overrides use prefix TINT_.
// A missing config file is not an error.
func Load() (Config, error) {
	home := os.Getenv("HOME")
	v := viper.New()

	v.SetDefault("themes.dir", filepath.Join(configHome(home), "tint", "themes"))
	v.SetDefault("themes.default", "Light")
	v.SetDefault("state.path", filepath.Join(stateHome(home), "tint", "selected-theme"))
	v.SetDefault("ui.color", "auto")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	v.SetConfigType("toml")
	if p := os.Getenv("TINT_CONFIG"); p != "" {
		v.SetConfigFile(p)
	} else {
		v.AddConfigPath(filepath.Join(configHome(home), "tint"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TINT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Normalize()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Normalize lowercases the enumerated settings so later comparisons are exact.
func (c *Config) Normalize() {
	c.UI.Color = strings.ToLower(strings.TrimSpace(c.UI.Color))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
}

// Validate rejects values the rest of the program cannot act on.
func (c Config) Validate() error {
	switch strings.ToLower(c.UI.Color) {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("ui.color: want auto, always or never, got %q", c.UI.Color)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level: unknown level %q", c.Log.Level)
	}
	return nil
}

func configHome(home string) string {
	if x := os.Getenv("XDG_CONFIG_HOME"); x != "" {
		return x
	}
	return filepath.Join(home, ".config")
}

func stateHome(home string) string {
	if x := os.Getenv("XDG_STATE_HOME"); x != "" {
		return x
	}
	return filepath.Join(home, ".local", "state")
}
