// Package config loads the stdx CLI configuration from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// EnvVar names the environment variable that points at a config file.
const EnvVar = "STDX_CONFIG"

// ErrNotFound is returned when an explicitly requested config file does not
// exist.
var ErrNotFound = errors.New("config: file not found")

// Config holds the complete CLI configuration.
type Config struct {
	Log    LogConfig    `toml:"log"`
	Output OutputConfig `toml:"output"`
	Locale LocaleConfig `toml:"locale"`
	Slug   SlugConfig   `toml:"slug"`
}

// LogConfig controls the diagnostic logger.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// OutputConfig controls how documents and values are printed.
type OutputConfig struct {
	// Format is used when it cannot be derived from a file extension.
	Format string `toml:"format"`
	Indent int    `toml:"indent"`
	Color  *bool  `toml:"color"`
}

// LocaleConfig holds locale defaults.
type LocaleConfig struct {
	Default string `toml:"default"`
}

// SlugConfig configures `stdx str slug`.
type SlugConfig struct {
	Separator    string            `toml:"separator"`
	Replacements map[string]string `toml:"replacements"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads the configuration at path. An empty path falls back to
// $STDX_CONFIG and then to the user config directory; when none of those
// exist the defaults are returned.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = discover()
	}
	if path == "" {
		return Default(), nil
	}

	path = os.ExpandEnv(path)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if explicit {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return Default(), nil
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func discover() string {
	if p := os.Getenv(EnvVar); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	p := filepath.Join(dir, "stdx", "config.toml")
	if _, err := os.Stat(p); err != nil {
		return ""
	}
	return p
}

func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Output.Format == "" {
		c.Output.Format = "json"
	}
	if c.Output.Indent <= 0 {
		c.Output.Indent = 2
	}
	if c.Output.Color == nil {
		on := true
		c.Output.Color = &on
	}
	if c.Locale.Default == "" {
		c.Locale.Default = "en-US"
	}
	if c.Slug.Separator == "" {
		c.Slug.Separator = "-"
	}
}

// ColorEnabled reports whether coloured output is wanted.
func (c *Config) ColorEnabled() bool {
	return c.Output.Color == nil || *c.Output.Color
}
