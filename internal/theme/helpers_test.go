package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/tint/internal/ui"
)

const solarized = `
[palette]
title = "#268bd2"
text = "#839496"
muted = "#586e75"
accent = "#2aa198"
success = "#859900"
error = "#dc322f"
pending = "#b58900"
border = "#073642"

[border]
style = "thick"
`

const broken = `<Style xmlns="https://github.com/avaloniaui">
  <Setter Property="Background" Value="Red"/>
</Style>`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// newTheme builds a theme with its own sheet so identities never collide.
func newTheme(t *testing.T, name string) *Theme {
	t.Helper()
	s, err := ui.ParseSheet([]byte("[palette]\ntitle = \"#000000\"\n"))
	require.NoError(t, err)
	th, err := New(name, s)
	require.NoError(t, err)
	return th
}
