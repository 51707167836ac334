package refstore

import "github.com/hupe1980/refstore/internal/liveness"

// ObjectRef is a reference to an object in a Store. It can be held, cloned
// and released in any goroutine, even when T is not safe for concurrent
// use, because to access the object you still need the store that owns it.
// A ref is a capability plus an identity, never a way at the data.
//
// All clones of a ref share one strong count; the slot stays alive while
// any clone does. A single ObjectRef value must not be used from two
// goroutines at once; hand each goroutine its own clone.
type ObjectRef[T any] struct {
	index uint32
	rc    *liveness.Strong
}

// Clone returns a new ref to the same slot and bumps the shared strong
// count. Safe from any goroutine.
func (r *ObjectRef[T]) Clone() *ObjectRef[T] {
	if r.rc == nil {
		panic(ErrReleasedRef)
	}
	return &ObjectRef[T]{index: r.index, rc: r.rc.Clone()}
}

// Release drops this ref's strong ownership. Safe from any goroutine.
//
// Releasing the last clone does not free the slot, it only makes it
// reclaimable; the owning goroutine frees it with Store.Clean or
// Store.Remove. Releasing a ref twice panics with ErrReleasedRef.
func (r *ObjectRef[T]) Release() {
	r.surrender()
}

// surrender consumes the ref's strong ownership and returns the remaining
// strong count. The ref is unusable afterwards.
func (r *ObjectRef[T]) surrender() int64 {
	if r.rc == nil {
		panic(ErrReleasedRef)
	}
	remaining := r.rc.Release()
	r.rc = nil
	return remaining
}

// Index returns the ref's slot index in the issuing store. Indices are
// reused once a slot is reclaimed, so an index alone is not an identity.
func (r *ObjectRef[T]) Index() uint32 {
	return r.index
}

// RefCount returns the number of un-released clones sharing this ref's
// slot, including this one, or zero for a released ref. The value may be
// stale as soon as it is read when clones are released concurrently.
func (r *ObjectRef[T]) RefCount() int64 {
	if r.rc == nil {
		return 0
	}
	return r.rc.Count()
}

// Released reports whether this ref was released or surrendered to Remove.
func (r *ObjectRef[T]) Released() bool {
	return r.rc == nil
}
