// Package slab implements a free-list backed slot array with stable indices.
//
// Removing a slot never moves or renumbers any other slot. Freed slots are
// chained into a free list and reused by later inserts, so a live index can
// serve as a long-lived identity for its value.
//
// Slab is not safe for concurrent use; callers own the synchronization.
package slab

import (
	"fmt"
	"iter"

	"github.com/bits-and-blooms/bitset"
)

// NilIndex terminates the free list. It is never a valid slot index.
const NilIndex = ^uint32(0)

type entry[T any] struct {
	value T
	next  uint32 // next vacant slot; meaningful only while this slot is vacant
}

// Slab is a slot array with O(1) insert, remove and index access.
type Slab[T any] struct {
	entries  []entry[T]
	occupied *bitset.BitSet
	free     uint32 // head of the vacant list
	count    int

	inserts  uint64 // historical
	removals uint64 // historical
}

// Stats is a snapshot of slab usage.
//
// Len and Cap are current; Inserts and Removals are cumulative.
type Stats struct {
	Len      int
	Cap      int
	Inserts  uint64
	Removals uint64
}

// New creates an empty slab. capacity pre-sizes the backing array and may be
// zero.
func New[T any](capacity int) *Slab[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Slab[T]{
		entries:  make([]entry[T], 0, capacity),
		occupied: bitset.New(uint(capacity)),
		free:     NilIndex,
	}
}

// Insert stores v in a free slot and returns its index. The index stays
// valid until the slot is removed.
func (s *Slab[T]) Insert(v T) uint32 {
	var idx uint32
	if s.free != NilIndex {
		idx = s.free
		s.free = s.entries[idx].next
		s.entries[idx].value = v
	} else {
		idx = uint32(len(s.entries))
		s.entries = append(s.entries, entry[T]{value: v})
	}
	s.occupied.Set(uint(idx))
	s.count++
	s.inserts++
	return idx
}

// Contains reports whether index i currently holds a value.
func (s *Slab[T]) Contains(i uint32) bool {
	return i != NilIndex && s.occupied.Test(uint(i))
}

// Get returns a pointer to the value at index i, or false if the slot is
// vacant or out of range. The pointer is valid until the slot is removed.
func (s *Slab[T]) Get(i uint32) (*T, bool) {
	if !s.Contains(i) {
		return nil, false
	}
	return &s.entries[i].value, true
}

// Remove frees the slot at index i and returns its value. The index becomes
// eligible for reuse by a later Insert.
//
// Remove panics if the slot is vacant; callers are expected to check
// Contains first when the index is not known to be live.
func (s *Slab[T]) Remove(i uint32) T {
	if !s.Contains(i) {
		panic(fmt.Sprintf("slab: remove of vacant slot %d", i))
	}
	v := s.entries[i].value

	// Zero the slot so the GC can reclaim whatever the value referenced.
	var zero T
	s.entries[i].value = zero

	s.entries[i].next = s.free
	s.free = i
	s.occupied.Clear(uint(i))
	s.count--
	s.removals++
	return v
}

// Retain removes every slot for which keep returns false and reports how
// many were removed. Surviving slots keep their indices.
func (s *Slab[T]) Retain(keep func(i uint32, v *T) bool) int {
	removed := 0
	for i, ok := s.occupied.NextSet(0); ok; i, ok = s.occupied.NextSet(i + 1) {
		idx := uint32(i)
		if !keep(idx, &s.entries[idx].value) {
			s.Remove(idx)
			removed++
		}
	}
	return removed
}

// All iterates over every occupied slot in index order.
func (s *Slab[T]) All() iter.Seq2[uint32, *T] {
	return func(yield func(uint32, *T) bool) {
		for i, ok := s.occupied.NextSet(0); ok; i, ok = s.occupied.NextSet(i + 1) {
			idx := uint32(i)
			if !yield(idx, &s.entries[idx].value) {
				return
			}
		}
	}
}

// Len returns the number of occupied slots.
func (s *Slab[T]) Len() int {
	return s.count
}

// Cap returns the number of allocated slots, occupied or vacant.
func (s *Slab[T]) Cap() int {
	return len(s.entries)
}

// Stats returns the current slab statistics.
func (s *Slab[T]) Stats() Stats {
	return Stats{
		Len:      s.count,
		Cap:      len(s.entries),
		Inserts:  s.inserts,
		Removals: s.removals,
	}
}
