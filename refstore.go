package refstore

import (
	"iter"
	"time"

	"github.com/hupe1980/refstore/internal/liveness"
	"github.com/hupe1980/refstore/internal/owner"
	"github.com/hupe1980/refstore/internal/slab"
)

// object pairs a stored value with the weak witness of its ref lineage.
// The witness is how a sweep observes, without owning anything, whether any
// clones of the slot's ref are still alive.
type object[T any] struct {
	witness *liveness.Weak
	data    T
}

// Store holds objects of type T on behalf of a single owning goroutine and
// issues ObjectRefs for them.
//
// Store methods are not synchronized. Everything that touches a stored
// value (Insert, Get, Clean, Remove, All) must run on the owner; only the
// refs themselves are safe to clone and release elsewhere. Clean should be
// called once in a while to free objects whose refs were all released,
// including refs released on other goroutines.
type Store[T any] struct {
	slab    *slab.Slab[object[T]]
	guard   owner.Guard
	logger  *Logger
	metrics MetricsCollector
	cleans  uint64
}

// Stats is a snapshot of store state.
//
// Reclaimable counts slots whose refs are all released but that have not
// been swept yet; Live includes them. Counters are cumulative.
type Stats struct {
	Live        int
	Reclaimable int
	Capacity    int
	Inserts     uint64
	Removals    uint64
	Cleans      uint64
}

// New creates an empty store for objects of type T.
func New[T any](opts ...Option) *Store[T] {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Store[T]{
		slab:    slab.New[object[T]](o.initialCapacity),
		logger:  o.logger,
		metrics: o.metricsCollector,
	}
	if o.threadGuard {
		s.guard = owner.Capture()
	}
	return s
}

// Insert stores data and returns a ref for it. The ref (or any clone of
// it) is the only thing keeping the slot alive across sweeps.
func (s *Store[T]) Insert(data T) *ObjectRef[T] {
	s.guard.Check()
	start := time.Now()

	rc := liveness.NewStrong()
	index := s.slab.Insert(object[T]{
		witness: rc.Downgrade(),
		data:    data,
	})

	s.metrics.RecordInsert(time.Since(start))
	s.logger.LogInsert(index, s.slab.Len())

	return &ObjectRef[T]{index: index, rc: rc}
}

// Get resolves ref to a pointer to the stored object. The pointer is valid
// until the slot is removed; mutation goes through the same pointer.
//
// Get panics with ErrStaleRef if the slot was already reclaimed, with
// ErrForeignRef if ref was issued by a different store, and with
// ErrReleasedRef if ref was already released.
func (s *Store[T]) Get(ref *ObjectRef[T]) *T {
	s.guard.Check()
	start := time.Now()

	obj := s.resolve(ref)

	s.metrics.RecordGet(time.Since(start))
	return &obj.data
}

// resolve maps a ref to its slot, enforcing the issuance contract. The
// witness comparison is what catches a foreign ref before it can alias an
// unrelated object that happens to live at the same index.
func (s *Store[T]) resolve(ref *ObjectRef[T]) *object[T] {
	if ref.rc == nil {
		panic(ErrReleasedRef)
	}
	obj, ok := s.slab.Get(ref.index)
	if !ok {
		panic(ErrStaleRef)
	}
	if !obj.witness.Witnesses(ref.rc) {
		panic(ErrForeignRef)
	}
	return obj
}

// Clean removes every object whose refs have all been released. This is
// the only path that frees objects abandoned on other goroutines, and it
// runs on the owner precisely so the teardown does too.
//
// Surviving slots keep their indices.
func (s *Store[T]) Clean() {
	s.guard.Check()
	start := time.Now()

	removed := s.slab.Retain(func(_ uint32, obj *object[T]) bool {
		return obj.witness.StrongCount() > 0
	})
	s.cleans++

	s.metrics.RecordClean(removed, time.Since(start))
	s.logger.LogClean(removed, s.slab.Len())
}

// Remove surrenders ref and tears its slot down immediately if ref was the
// last strong holder, returning the stored object and true. When other
// clones still exist nothing is removed and Remove returns the zero value
// and false; the slot stays reachable through the surviving clones.
//
// Remove gives the owner an eager reclamation path that does not wait for
// the next Clean, at the price of giving up the ref. The issuance contract
// is enforced as in Get.
func (s *Store[T]) Remove(ref *ObjectRef[T]) (T, bool) {
	s.guard.Check()
	start := time.Now()

	s.resolve(ref)
	index := ref.index

	if ref.surrender() > 0 {
		s.metrics.RecordRemove(false, time.Since(start))
		s.logger.LogRemove(index, false)
		var zero T
		return zero, false
	}

	obj := s.slab.Remove(index)

	s.metrics.RecordRemove(true, time.Since(start))
	s.logger.LogRemove(index, true)
	return obj.data, true
}

// Len returns the number of objects currently stored, including ones that
// are reclaimable but not yet swept.
func (s *Store[T]) Len() int {
	return s.slab.Len()
}

// All iterates over every stored object in slot order. Owner only, like
// Get; the yielded pointers follow the same validity rule.
func (s *Store[T]) All() iter.Seq2[uint32, *T] {
	return func(yield func(uint32, *T) bool) {
		s.guard.Check()
		for index, obj := range s.slab.All() {
			if !yield(index, &obj.data) {
				return
			}
		}
	}
}

// Stats returns a snapshot of store state.
func (s *Store[T]) Stats() Stats {
	s.guard.Check()

	reclaimable := 0
	for _, obj := range s.slab.All() {
		if obj.witness.StrongCount() == 0 {
			reclaimable++
		}
	}

	ss := s.slab.Stats()
	return Stats{
		Live:        ss.Len,
		Reclaimable: reclaimable,
		Capacity:    ss.Cap,
		Inserts:     ss.Inserts,
		Removals:    ss.Removals,
		Cleans:      s.cleans,
	}
}
