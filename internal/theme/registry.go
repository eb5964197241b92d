package theme

import (
	"fmt"
	"iter"
	"slices"
)

// Registry is an insertion-ordered collection of themes. Names are not
// required to be unique; lookups by name return the first match.
//
// A registry bound to a Selector keeps the selection valid: removing the
// selected theme, or clearing the registry, also clears the selection before
// the call returns.
type Registry struct {
	themes []*Theme
	sel    *Selector
}

// NewRegistry returns a registry holding themes in order. Nil entries are dropped.
func NewRegistry(themes ...*Theme) *Registry {
	r := &Registry{themes: make([]*Theme, 0, len(themes))}
	for _, t := range themes {
		if t != nil {
			r.themes = append(r.themes, t)
		}
	}
	return r
}

// Add appends t.
func (r *Registry) Add(t *Theme) error {
	if t == nil {
		return fmt.Errorf("add theme: %w", ErrInvalidArgument)
	}
	r.themes = append(r.themes, t)
	return nil
}

// AddAll appends every theme, or none of them if any is nil.
func (r *Registry) AddAll(themes ...*Theme) error {
	for i, t := range themes {
		if t == nil {
			return fmt.Errorf("add themes: entry %d is nil: %w", i, ErrInvalidArgument)
		}
	}
	r.themes = append(r.themes, themes...)
	return nil
}

// Remove drops t and reports whether it was present. Removing the selected
// theme clears the selection before Remove returns, except from inside a
// change handler: there the clear is queued behind the current round, and
// until it runs Selected() still reports t.
func (r *Registry) Remove(t *Theme) bool {
	i := r.index(t)
	if i < 0 {
		return false
	}
	r.themes = slices.Delete(r.themes, i, i+1)
	if r.sel != nil {
		r.sel.forget(t)
	}
	return true
}

// Contains reports whether t (by identity) is in the registry.
func (r *Registry) Contains(t *Theme) bool { return r.index(t) >= 0 }

// Clear empties the registry and the selection. From inside a change handler
// the selection is cleared once the current round has been delivered.
func (r *Registry) Clear() {
	r.themes = nil
	if r.sel != nil {
		r.sel.forgetAll()
	}
}

func (r *Registry) Len() int { return len(r.themes) }

// All iterates the themes in insertion order.
func (r *Registry) All() iter.Seq[*Theme] {
	return func(yield func(*Theme) bool) {
		for _, t := range slices.Clone(r.themes) {
			if !yield(t) {
				return
			}
		}
	}
}

// Themes returns a copy of the registry contents.
func (r *Registry) Themes() []*Theme { return slices.Clone(r.themes) }

// First returns the first theme, or nil when the registry is empty.
func (r *Registry) First() *Theme {
	if len(r.themes) == 0 {
		return nil
	}
	return r.themes[0]
}

// Find returns the first theme named name.
func (r *Registry) Find(name string) (*Theme, bool) {
	for _, t := range r.themes {
		if t.name == name {
			return t, true
		}
	}
	return nil, false
}

// Names lists theme names in order, duplicates included.
func (r *Registry) Names() []string {
	out := make([]string, len(r.themes))
	for i, t := range r.themes {
		out[i] = t.name
	}
	return out
}

func (r *Registry) index(t *Theme) int {
	if t == nil {
		return -1
	}
	return slices.Index(r.themes, t)
}
