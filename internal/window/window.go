// Package window provides terminal panes that can be themed.
package window

import (
	"strings"

	"github.com/google/uuid"

	"github.com/Makepad-fr/tint/internal/ui"
)

// Window is a framed pane with its own sheet stack. It satisfies
// theme.Surface.
type Window struct {
	id     string
	Title  string
	styles *ui.Stack

	ready, closing signal
}

func New(title string) *Window {
	return &Window{
		id:     uuid.NewString(),
		Title:  title,
		styles: ui.NewStack(),
	}
}

func (w *Window) ID() string { return w.id }

func (w *Window) Styles() *ui.Stack { return w.styles }

func (w *Window) OnReady(fn func()) func() { return w.ready.add(fn) }

func (w *Window) OnClosing(fn func()) func() { return w.closing.add(fn) }

// Show marks the window ready to draw. Only the first call notifies.
func (w *Window) Show() { w.ready.emit() }

// Close announces the window is going away. Only the first call notifies.
func (w *Window) Close() { w.closing.emit() }

func (w *Window) Visible() bool { return w.ready.fired && !w.closing.fired }

func (w *Window) Closed() bool { return w.closing.fired }

// View renders body inside the window frame using the head sheet. width is
// the outer width; values below 10 are ignored.
func (w *Window) View(body string, width int, focused bool) string {
	s := w.styles.Head()
	if s == nil {
		s = unstyled
	}
	title := s.Title.Render(w.Title)
	if focused {
		title = s.Accent.Render(s.SymPending+" ") + title
	}
	frame := s.Frame
	if width >= 10 {
		frame = frame.Width(width - 2)
	}
	return frame.Render(strings.Join([]string{title, body}, "\n"))
}

var unstyled = mustPlain()

func mustPlain() *ui.Sheet {
	s, err := ui.ParseSheet([]byte("[border]\nstyle = \"normal\"\n"))
	if err != nil {
		panic(err)
	}
	return s
}
