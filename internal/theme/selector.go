package theme

import (
	"fmt"
	"log/slog"
	"slices"
)

// Change is delivered to subscribers after the selection moved from Old to New.
// Either side may be nil.
type Change struct {
	Old, New *Theme
}

// Option configures a Selector, a Binder or the load and persist helpers.
type Option func(*options)

type options struct {
	log *slog.Logger
}

// WithLogger routes diagnostics to l instead of slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.log = l }
}

func buildOptions(opts []Option) options {
	o := options{}
	for _, fn := range opts {
		fn(&o)
	}
	if o.log == nil {
		o.log = slog.Default()
	}
	return o
}

type subscriber struct {
	id int
	fn func(Change)
}

// pendingOp is a selection request made while a change was being delivered.
// A clearIf op only clears when that theme is still selected when it runs.
type pendingOp struct {
	theme   *Theme
	clearIf *Theme
}

// Selector holds the active theme of a Registry and announces every change.
//
// Subscribers run synchronously, in subscription order, after the field has
// been updated. Set and SelectByName called from inside a subscriber are
// queued and applied, in order, once the current round has been delivered.
type Selector struct {
	reg      *Registry
	selected *Theme

	subs    []subscriber
	nextSub int

	notifying bool
	pending   []pendingOp

	log *slog.Logger
}

// NewSelector binds a selector to reg. A nil reg gets an empty registry.
func NewSelector(reg *Registry, opts ...Option) *Selector {
	if reg == nil {
		reg = NewRegistry()
	}
	o := buildOptions(opts)
	s := &Selector{reg: reg, log: o.log}
	reg.sel = s
	return s
}

func (s *Selector) Registry() *Registry { return s.reg }

// Selected returns the active theme or nil.
func (s *Selector) Selected() *Theme { return s.selected }

// Set makes t the active theme; nil clears the selection. Selecting the
// theme that is already active does nothing. t must belong to the registry.
func (s *Selector) Set(t *Theme) error {
	if t != nil && !s.reg.Contains(t) {
		return fmt.Errorf("select %q: not in registry: %w", t.name, ErrNotFound)
	}
	if s.notifying {
		s.pending = append(s.pending, pendingOp{theme: t})
		return nil
	}
	s.apply(t)
	s.drain()
	return nil
}

// SelectByName selects the first theme named name. It reports false, and
// changes nothing, when no theme has that name.
func (s *Selector) SelectByName(name string) bool {
	t, ok := s.reg.Find(name)
	if !ok {
		return false
	}
	// t comes from the registry, so Set cannot fail.
	_ = s.Set(t)
	return true
}

// SelectFallback selects the first of names found in the registry, skipping
// empty names, and otherwise the registry's first theme. It reports false
// only when the registry is empty.
func (s *Selector) SelectFallback(names ...string) bool {
	for _, n := range names {
		if n != "" && s.SelectByName(n) {
			return true
		}
	}
	first := s.reg.First()
	if first == nil {
		return false
	}
	_ = s.Set(first)
	return true
}

// Subscribe registers fn for every subsequent change.
func (s *Selector) Subscribe(fn func(Change)) (unsubscribe func()) {
	s.nextSub++
	id := s.nextSub
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	return func() {
		s.subs = slices.DeleteFunc(s.subs, func(sub subscriber) bool { return sub.id == id })
	}
}

func (s *Selector) apply(t *Theme) {
	if t == s.selected {
		return
	}
	old := s.selected
	s.selected = t
	s.log.Debug("theme selected", slog.String("old", nameOf(old)), slog.String("new", nameOf(t)))
	s.notify(Change{Old: old, New: t})
}

func (s *Selector) notify(c Change) {
	s.notifying = true
	defer func() { s.notifying = false }()

	for _, sub := range slices.Clone(s.subs) {
		if !s.subscribed(sub.id) {
			continue
		}
		sub.fn(c)
	}
}

func (s *Selector) drain() {
	for len(s.pending) > 0 {
		op := s.pending[0]
		s.pending = s.pending[1:]

		if op.clearIf != nil {
			if s.selected == op.clearIf {
				s.apply(nil)
			}
			continue
		}
		if op.theme != nil && !s.reg.Contains(op.theme) {
			s.log.Debug("dropping queued selection", slog.String("theme", op.theme.name))
			continue
		}
		s.apply(op.theme)
	}
}

func (s *Selector) subscribed(id int) bool {
	return slices.ContainsFunc(s.subs, func(sub subscriber) bool { return sub.id == id })
}

// forget runs after t left the registry.
func (s *Selector) forget(t *Theme) {
	if s.selected != t {
		return
	}
	s.clearSelected()
}

// forgetAll runs after the registry was emptied.
func (s *Selector) forgetAll() {
	if s.selected == nil {
		return
	}
	s.clearSelected()
}

func (s *Selector) clearSelected() {
	if s.notifying {
		s.pending = append(s.pending, pendingOp{clearIf: s.selected})
		return
	}
	s.apply(nil)
	s.drain()
}

func nameOf(t *Theme) string {
	if t == nil {
		return ""
	}
	return t.name
}
