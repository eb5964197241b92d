package window

import "slices"

// signal is a list of handlers fired at most once.
type signal struct {
	fired    bool
	nextID   int
	handlers []handler
}

type handler struct {
	id int
	fn func()
}

func (s *signal) add(fn func()) (cancel func()) {
	s.nextID++
	id := s.nextID
	s.handlers = append(s.handlers, handler{id: id, fn: fn})
	return func() {
		s.handlers = slices.DeleteFunc(s.handlers, func(h handler) bool { return h.id == id })
	}
}

// emit runs the handlers registered at call time. Handlers cancelled by an
// earlier handler in the same emit are skipped.
func (s *signal) emit() {
	if s.fired {
		return
	}
	s.fired = true
	for _, h := range slices.Clone(s.handlers) {
		if !slices.ContainsFunc(s.handlers, func(x handler) bool { return x.id == h.id }) {
			continue
		}
		h.fn()
	}
}
