package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-stdx/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, 2, cfg.Output.Indent)
	assert.True(t, cfg.ColorEnabled())
	assert.Equal(t, "en-US", cfg.Locale.Default)
	assert.Equal(t, "-", cfg.Slug.Separator)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[log]
level = "debug"
format = "json"

[output]
format = "yaml"
indent = 4
color = false

[locale]
default = "de-DE"

[slug]
separator = "_"

[slug.replacements]
"&" = "and"
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, 4, cfg.Output.Indent)
	assert.False(t, cfg.ColorEnabled())
	assert.Equal(t, "de-DE", cfg.Locale.Default)
	assert.Equal(t, "_", cfg.Slug.Separator)
	assert.Equal(t, map[string]string{"&": "and"}, cfg.Slug.Replacements)
}

func TestLoadPartialAppliesDefaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "[log]\nlevel = \"error\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.True(t, cfg.ColorEnabled())
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrNotFound))
}

func TestLoadInvalidTOML(t *testing.T) {
	_, err := config.Load(writeConfig(t, "[log\nlevel ="))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: parsing")
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv(config.EnvVar, writeConfig(t, "[output]\nindent = 8\n"))
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Output.Indent)
}

func TestLoadNothingFound(t *testing.T) {
	t.Setenv(config.EnvVar, "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}
