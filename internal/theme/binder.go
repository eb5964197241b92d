package theme

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/Makepad-fr/tint/internal/ui"
)

// Surface is anything a theme can be applied to: a window, a pane, a dialog.
// The binder only edits the surface's sheet stack and listens to its
// lifecycle; it never owns the surface.
type Surface interface {
	// Styles is the surface's ordered sheet list. The active theme lives at index 0.
	Styles() *ui.Stack
	// OnReady registers fn for when the surface becomes ready to draw.
	OnReady(fn func()) (cancel func())
	// OnClosing registers fn for when the surface is about to close.
	OnClosing(fn func()) (cancel func())
}

type attachment struct {
	applied                    *ui.Sheet
	cancelReady, cancelClosing func()
}

// Binder keeps every attached surface showing the selector's active theme.
type Binder struct {
	sel         *Selector
	attached    map[Surface]*attachment
	order       []Surface
	unsubscribe func()
	log         *slog.Logger
}

// NewBinder subscribes to sel. Create the binder before any other subscriber
// so that surfaces are already restyled when later observers run.
func NewBinder(sel *Selector, opts ...Option) *Binder {
	o := buildOptions(opts)
	b := &Binder{
		sel:      sel,
		attached: make(map[Surface]*attachment),
		log:      o.log,
	}
	b.unsubscribe = sel.Subscribe(b.onChange)
	return b
}

// Enable attaches s and applies the active theme to it. Enabling an attached
// surface is a no-op. s must not already carry the theme's sheet. A selected
// theme that has already left the registry, with its clear still queued, is
// not applied.
func (b *Binder) Enable(s Surface) error {
	if s == nil {
		return fmt.Errorf("enable themes: nil surface: %w", ErrInvalidArgument)
	}
	if _, ok := b.attached[s]; ok {
		return nil
	}

	a := &attachment{}
	b.attached[s] = a
	b.order = append(b.order, s)
	if t := b.sel.Selected(); t != nil && b.sel.reg.Contains(t) {
		a.applied = t.Style()
		s.Styles().Insert(0, a.applied)
	}
	a.cancelReady = s.OnReady(func() { b.onReady(s) })
	a.cancelClosing = s.OnClosing(func() { b.Disable(s) })

	b.log.Debug("surface attached", slog.Int("attached", len(b.order)))
	return nil
}

// Disable detaches s and strips the active theme's sheet from it. It reports
// false for nil or unattached surfaces.
func (b *Binder) Disable(s Surface) bool {
	if s == nil {
		return false
	}
	a, ok := b.attached[s]
	if !ok {
		return false
	}

	delete(b.attached, s)
	b.order = slices.DeleteFunc(b.order, func(x Surface) bool { return x == s })
	a.cancelReady()
	a.cancelClosing()
	if a.applied != nil {
		s.Styles().Remove(a.applied)
	}

	b.log.Debug("surface detached", slog.Int("attached", len(b.order)))
	return true
}

// Attached reports whether s is currently bound.
func (b *Binder) Attached(s Surface) bool {
	if s == nil {
		return false
	}
	_, ok := b.attached[s]
	return ok
}

func (b *Binder) Len() int { return len(b.order) }

// Surfaces returns the attached surfaces in attach order.
func (b *Binder) Surfaces() []Surface { return slices.Clone(b.order) }

// Close detaches every surface and stops following the selector.
func (b *Binder) Close() {
	for _, s := range b.Surfaces() {
		b.Disable(s)
	}
	if b.unsubscribe != nil {
		b.unsubscribe()
		b.unsubscribe = nil
	}
}

func (b *Binder) onChange(c Change) {
	var next *ui.Sheet
	if c.New != nil {
		next = c.New.Style()
	}
	for _, s := range b.Surfaces() {
		// Closing one surface can detach another.
		a, ok := b.attached[s]
		if !ok {
			continue
		}
		s.Styles().Replace(a.applied, next)
		a.applied = next
	}
}

// onReady puts the active sheet back at the head if the surface dropped it
// while it was being realized.
func (b *Binder) onReady(s Surface) {
	a, ok := b.attached[s]
	if !ok || a.applied == nil {
		return
	}
	st := s.Styles()
	if st.Head() == a.applied {
		return
	}
	st.Remove(a.applied)
	st.Insert(0, a.applied)
}
