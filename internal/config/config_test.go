package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_STATE_HOME", "")
	t.Setenv("TINT_CONFIG", "")
	return home
}

func TestLoadDefaults(t *testing.T) {
	home := isolate(t)

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".config", "tint", "themes"), c.Themes.Dir)
	require.Equal(t, "Light", c.Themes.Default)
	require.Equal(t, filepath.Join(home, ".local", "state", "tint", "selected-theme"), c.State.Path)
	require.Equal(t, "auto", c.UI.Color)
	require.Equal(t, "info", c.Log.Level)
	require.Empty(t, c.Log.File)
}

func TestLoadXDGDirs(t *testing.T) {
	isolate(t)
	cfgHome, stateHome := t.TempDir(), t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", cfgHome)
	t.Setenv("XDG_STATE_HOME", stateHome)

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(cfgHome, "tint", "themes"), c.Themes.Dir)
	require.Equal(t, filepath.Join(stateHome, "tint", "selected-theme"), c.State.Path)
}

func TestLoadFileAndEnv(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[themes]
dir = "/srv/themes"
default = "Dark"

[ui]
color = "never"
`), 0o644))
	t.Setenv("TINT_CONFIG", path)
	t.Setenv("TINT_LOG_LEVEL", "debug")

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, "/srv/themes", c.Themes.Dir)
	require.Equal(t, "Dark", c.Themes.Default)
	require.Equal(t, "never", c.UI.Color)
	require.Equal(t, "debug", c.Log.Level)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolate(t)
	t.Setenv("TINT_CONFIG", filepath.Join(t.TempDir(), "nope.toml"))
	_, err := Load()
	require.NoError(t, err)
}

func TestLoadRejectsBadValues(t *testing.T) {
	isolate(t)
	t.Setenv("TINT_UI_COLOR", "sometimes")
	_, err := Load()
	require.Error(t, err)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[themes\n"), 0o644))
	t.Setenv("TINT_CONFIG", path)
	_, err := Load()
	require.Error(t, err)
}

func TestLoadNormalizesCase(t *testing.T) {
	isolate(t)
	t.Setenv("TINT_UI_COLOR", "Never")
	t.Setenv("TINT_LOG_LEVEL", "DEBUG")

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, "never", c.UI.Color)
	require.Equal(t, "debug", c.Log.Level)
}

func TestValidateFlagOverride(t *testing.T) {
	isolate(t)
	c, err := Load()
	require.NoError(t, err)

	c.UI.Color = "bogus"
	c.Normalize()
	require.Error(t, c.Validate())

	c.UI.Color = "Always"
	c.Normalize()
	require.NoError(t, c.Validate())
	require.Equal(t, "always", c.UI.Color)
}
