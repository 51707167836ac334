// Package liveness implements the shared strong-count primitive behind
// object refs.
//
// Every clone of a ref holds a Strong attached to one shared counter; the
// slot that stores the value holds the Weak side, which can observe whether
// any strong holders remain without keeping the slot alive itself. Counter
// manipulation is atomic and safe from any goroutine.
package liveness

import "sync/atomic"

// state is the allocation shared by all Strong and Weak instances of one
// lineage. Its pointer identity is what ties a ref to its slot.
type state struct {
	strong atomic.Int64
}

// Strong is one strong holder of a lineage. Each ref clone owns exactly one
// Strong; releasing it is a one-shot operation.
type Strong struct {
	s *state
}

// NewStrong creates a fresh lineage with a strong count of one.
func NewStrong() *Strong {
	st := &state{}
	st.strong.Store(1)
	return &Strong{s: st}
}

// Clone adds a strong holder and returns it. Safe from any goroutine.
func (h *Strong) Clone() *Strong {
	h.s.strong.Add(1)
	return &Strong{s: h.s}
}

// Release drops this holder and returns the remaining strong count. The
// receiver must not be used afterwards. Safe from any goroutine.
func (h *Strong) Release() int64 {
	return h.s.strong.Add(-1)
}

// Count returns the current strong count. Safe from any goroutine, though
// the value may be stale by the time it is observed.
func (h *Strong) Count() int64 {
	return h.s.strong.Load()
}

// Downgrade returns the weak witness for this lineage.
func (h *Strong) Downgrade() *Weak {
	return &Weak{s: h.s}
}

// Weak observes a lineage without owning it.
type Weak struct {
	s *state
}

// StrongCount returns the number of strong holders still alive.
func (w *Weak) StrongCount() int64 {
	return w.s.strong.Load()
}

// Witnesses reports whether h belongs to the same lineage as w. This is the
// identity check that ties a ref to the slot that issued it.
func (w *Weak) Witnesses(h *Strong) bool {
	return h != nil && h.s == w.s
}
