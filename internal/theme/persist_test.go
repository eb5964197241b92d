package theme

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSaveRestoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "selected-theme")
	reg := NewRegistry(Defaults()...)
	dark, _ := reg.Find(DarkName)

	SaveSelection(path, dark)
	got := RestoreSelection(path, reg)
	require.Same(t, dark, got)

	// A fresh registry resolves by name.
	other := NewRegistry(Defaults()...)
	require.Equal(t, DarkName, RestoreSelection(path, other).Name())
}

func TestSaveNilWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "selected-theme")
	SaveSelection(path, nil)
	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))
}

func TestSaveSwallowsErrors(t *testing.T) {
	dir := t.TempDir()
	blocker := writeFile(t, dir, "file", "x")
	require.NotPanics(t, func() {
		SaveSelection(filepath.Join(blocker, "selected-theme"), DefaultLight())
		SaveSelection("", DefaultLight())
	})
}

func TestRestoreFailuresYieldNil(t *testing.T) {
	dir := t.TempDir()
	reg := NewRegistry(Defaults()...)

	require.Nil(t, RestoreSelection(filepath.Join(dir, "missing"), reg))
	require.Nil(t, RestoreSelection("", reg))
	require.Nil(t, RestoreSelection(writeFile(t, dir, "x", "Light"), nil))

	unknown := writeFile(t, dir, "unknown", "Solarized\n")
	require.Nil(t, RestoreSelection(unknown, reg))

	empty := writeFile(t, dir, "empty", "")
	require.Nil(t, RestoreSelection(empty, reg))
}

func TestRestoreDoesNotSelect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "selected-theme")
	reg := NewRegistry(Defaults()...)
	sel := NewSelector(reg)
	SaveSelection(path, DefaultDark())

	got := RestoreSelection(path, reg)
	require.NotNil(t, got)
	require.Nil(t, sel.Selected())
	require.NoError(t, sel.Set(got))
	require.Equal(t, DarkName, sel.Selected().Name())
}

func TestPaddedNameRoundTrips(t *testing.T) {
	dir := t.TempDir()
	nord, err := Load(writeFile(t, dir, " Nord .toml", solarized))
	require.NoError(t, err)
	require.Equal(t, " Nord ", nord.Name())

	path := filepath.Join(dir, "state", "selected-theme")
	SaveSelection(path, nord)
	require.Same(t, nord, RestoreSelection(path, NewRegistry(DefaultLight(), nord)))
}

func TestPersistLogsToGivenLogger(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	path := writeFile(t, t.TempDir(), "selected-theme", "Solarized\n")
	require.Nil(t, RestoreSelection(path, NewRegistry(Defaults()...), WithLogger(log)))
	require.Contains(t, buf.String(), "saved theme not available")
}
