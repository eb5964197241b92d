package window

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/tint/internal/ui"
)

func TestWindowSignalsFireOnce(t *testing.T) {
	w := New("main")
	var ready, closing int
	w.OnReady(func() { ready++ })
	w.OnClosing(func() { closing++ })

	require.False(t, w.Visible())
	w.Show()
	w.Show()
	require.Equal(t, 1, ready)
	require.True(t, w.Visible())

	w.Close()
	w.Close()
	require.Equal(t, 1, closing)
	require.True(t, w.Closed())
	require.False(t, w.Visible())
}

func TestWindowCancelledHandlerIsSkipped(t *testing.T) {
	w := New("main")
	var calls []string
	var cancelSecond func()
	w.OnClosing(func() {
		calls = append(calls, "first")
		cancelSecond()
	})
	cancelSecond = w.OnClosing(func() { calls = append(calls, "second") })
	cancel := w.OnClosing(func() { calls = append(calls, "third") })
	cancel()

	w.Close()
	require.Equal(t, []string{"first"}, calls)
}

func TestWindowIdentity(t *testing.T) {
	a, b := New("a"), New("b")
	require.NotEqual(t, a.ID(), b.ID())
	require.Len(t, a.ID(), 36)
}

func TestWindowViewUsesHeadSheet(t *testing.T) {
	w := New("Editor")
	plain := w.View("hello", 30, false)
	require.Contains(t, plain, "Editor")
	require.Contains(t, plain, "┌")

	w.Styles().Push(ui.MustBuiltin(ui.BuiltinDark))
	themed := w.View("hello", 30, true)
	require.Contains(t, themed, "hello")
	require.Contains(t, themed, "╭")
}
