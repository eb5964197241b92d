package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/tint/internal/theme"
)

type fixture struct {
	sel         *theme.Selector
	binder      *theme.Binder
	light, dark *theme.Theme
	m           modelTUI
}

func newFixture(t *testing.T, dir string) *fixture {
	t.Helper()
	light, dark := theme.DefaultLight(), theme.DefaultDark()
	sel := theme.NewSelector(theme.NewRegistry(light, dark))
	b := theme.NewBinder(sel)
	t.Cleanup(b.Close)
	require.NoError(t, sel.Set(light))

	m := newModel(Deps{
		Selector:     sel,
		Binder:       b,
		ThemesDir:    dir,
		StatePath:    filepath.Join(t.TempDir(), "selected"),
		DefaultTheme: theme.LightName,
	})
	return &fixture{sel: sel, binder: b, light: light, dark: dark, m: m}
}

func (f *fixture) send(t *testing.T, msgs ...tea.Msg) {
	t.Helper()
	for _, msg := range msgs {
		next, _ := f.m.Update(msg)
		m, ok := next.(modelTUI)
		require.True(t, ok)
		f.m = m
	}
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestNewModelThemesRootWindow(t *testing.T) {
	f := newFixture(t, "")
	require.True(t, f.binder.Attached(f.m.root))
	require.Same(t, f.light.Style(), f.m.root.Styles().Head())
	require.Equal(t, 0, f.m.list.Index())
	require.Len(t, f.m.list.Items(), 2)
}

func TestEnterAppliesHighlightedTheme(t *testing.T) {
	f := newFixture(t, "")
	f.m.list.Select(1)
	f.send(t, enter)

	require.Same(t, f.dark, f.sel.Selected())
	require.Same(t, f.dark.Style(), f.m.root.Styles().Head())
	require.Equal(t, "applied Dark", f.m.status)
}

func TestPanesFollowSelection(t *testing.T) {
	f := newFixture(t, "")
	f.send(t, runes("n"), runes("n"))
	require.Len(t, f.m.panes, 2)
	require.Equal(t, 1, f.m.focus)
	require.Equal(t, 3, f.binder.Len(), "root and two panes")

	f.m.list.Select(1)
	f.send(t, enter)
	for _, w := range f.m.panes {
		require.Same(t, f.dark.Style(), w.Styles().Head())
		require.Equal(t, 1, w.Styles().Len())
	}

	f.send(t, tab)
	require.Equal(t, 0, f.m.focus)

	first := f.m.panes[0]
	f.send(t, runes("x"))
	require.Len(t, f.m.panes, 1)
	require.True(t, first.Closed())
	require.False(t, f.binder.Attached(first))
	require.Equal(t, 0, first.Styles().Len())
}

func TestCloseWithoutPanesIsNoop(t *testing.T) {
	f := newFixture(t, "")
	f.send(t, runes("x"), tab)
	require.Empty(t, f.m.panes)
	require.Equal(t, 0, f.m.focus)
}

func TestPromptSelectsByName(t *testing.T) {
	f := newFixture(t, "")
	f.send(t, runes(":"))
	require.True(t, f.m.prompting)

	f.send(t, runes("Nope"), enter)
	require.True(t, f.m.prompting)
	require.Contains(t, f.m.promptErr, "Nope")
	require.Same(t, f.light, f.sel.Selected())

	f.send(t, esc)
	require.False(t, f.m.prompting)

	f.send(t, runes(":"), runes("Dark"), enter)
	require.False(t, f.m.prompting)
	require.Same(t, f.dark, f.sel.Selected())
	require.Equal(t, 1, f.m.list.Index(), "cursor follows the selection")
}

func TestReloadKeepsNameOrFallsBack(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Solarized.toml"), []byte("[border]\nstyle = \"thick\"\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Dark.toml"), []byte("[palette]\ntitle = \"#ffffff\"\n"), 0o644))

	f := newFixture(t, dir)
	require.NoError(t, f.sel.Set(f.dark))

	f.send(t, runes("r"))
	reg := f.sel.Registry()
	require.Equal(t, []string{"Dark", "Solarized"}, reg.Names())
	require.Len(t, f.m.list.Items(), 2)

	cur := f.sel.Selected()
	require.NotNil(t, cur)
	require.Equal(t, "Dark", cur.Name())
	require.NotSame(t, f.dark, cur, "the reloaded theme replaces the old one")
	require.Same(t, cur.Style(), f.m.root.Styles().Head())
	require.Equal(t, 1, f.m.root.Styles().Len())
}

func TestReloadMissingDirUsesDefaults(t *testing.T) {
	f := newFixture(t, filepath.Join(t.TempDir(), "missing"))
	f.send(t, runes("r"))

	require.Equal(t, []string{theme.LightName, theme.DarkName}, f.sel.Registry().Names())
	require.Equal(t, theme.LightName, f.sel.Selected().Name())
	require.Equal(t, "reloaded 2 themes", f.m.status)
}

func TestQuitAndResize(t *testing.T) {
	f := newFixture(t, "")
	next, _ := f.m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	f.m = next.(modelTUI)
	require.Equal(t, 120, f.m.width)

	_, cmd := f.m.Update(runes("q"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	require.True(t, ok)
}

func TestViewRendersPanes(t *testing.T) {
	f := newFixture(t, "")
	require.Contains(t, f.m.View(), "no panes open")

	f.send(t, runes("n"))
	out := f.m.View()
	require.Contains(t, out, "Pane 1")
	require.Contains(t, out, "The quick brown fox")
}

func TestShutdownDetachesEverything(t *testing.T) {
	f := newFixture(t, "")
	f.send(t, runes("n"))
	f.m.shutdown()
	require.Equal(t, 0, f.binder.Len())
	require.True(t, f.m.root.Closed())
}
