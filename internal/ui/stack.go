package ui

// Stack is the ordered list of sheets applied to a surface.
// Index 0 is the active sheet; the rest are lower-priority layers.
type Stack struct {
	sheets []*Sheet
}

// NewStack returns a stack holding sheets in order. Nil entries are skipped.
func NewStack(sheets ...*Sheet) *Stack {
	st := &Stack{}
	for _, s := range sheets {
		st.Push(s)
	}
	return st
}

func (st *Stack) Len() int { return len(st.sheets) }

// Head returns the active sheet, or nil for an empty stack.
func (st *Stack) Head() *Sheet {
	if len(st.sheets) == 0 {
		return nil
	}
	return st.sheets[0]
}

// At returns the sheet at i, or nil when i is out of range.
func (st *Stack) At(i int) *Sheet {
	if i < 0 || i >= len(st.sheets) {
		return nil
	}
	return st.sheets[i]
}

// Index returns the position of s (by identity), or -1.
func (st *Stack) Index(s *Sheet) int {
	if s == nil {
		return -1
	}
	for i, x := range st.sheets {
		if x == s {
			return i
		}
	}
	return -1
}

func (st *Stack) Contains(s *Sheet) bool { return st.Index(s) >= 0 }

// Push appends s as the lowest-priority layer.
func (st *Stack) Push(s *Sheet) {
	if s == nil {
		return
	}
	st.sheets = append(st.sheets, s)
}

// Insert places s at i, clamping i into [0, Len()].
func (st *Stack) Insert(i int, s *Sheet) {
	if s == nil {
		return
	}
	if i < 0 {
		i = 0
	}
	if i > len(st.sheets) {
		i = len(st.sheets)
	}
	st.sheets = append(st.sheets, nil)
	copy(st.sheets[i+1:], st.sheets[i:])
	st.sheets[i] = s
}

// Remove drops the first occurrence of s and reports whether it was present.
func (st *Stack) Remove(s *Sheet) bool {
	i := st.Index(s)
	if i < 0 {
		return false
	}
	st.sheets = append(st.sheets[:i], st.sheets[i+1:]...)
	return true
}

// Replace swaps old for next in a single step, so the stack never holds both.
// A missing old puts next at index 0; a nil next just removes old.
func (st *Stack) Replace(old, next *Sheet) {
	if next == nil {
		st.Remove(old)
		return
	}
	if old == next {
		if !st.Contains(next) {
			st.Insert(0, next)
		}
		return
	}
	if i := st.Index(old); i >= 0 {
		st.sheets[i] = next
		return
	}
	st.Insert(0, next)
}

// Sheets returns a copy of the stack contents, head first.
func (st *Stack) Sheets() []*Sheet {
	out := make([]*Sheet, len(st.sheets))
	copy(out, st.sheets)
	return out
}

func (st *Stack) Clear() { st.sheets = nil }
