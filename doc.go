// Package refstore allows references to objects to be shared across
// goroutine and thread boundaries even when the objects themselves are not
// safe for concurrent use.
//
// Objects live in a Store owned by a single goroutine (or OS thread). Every
// insert mints an ObjectRef: a cheap, cloneable token that can be held,
// copied and released from any goroutine, but never exposes the object. To
// actually read or mutate the object you go back through the Store, which
// only the owner may touch.
//
// # Quick Start
//
//	store := refstore.New[*Session]()
//
//	ref := store.Insert(newSession())   // owner goroutine
//	go track(ref.Clone())               // refs travel freely
//
//	sess := store.Get(ref)              // owner goroutine only
//	sess.Touch()
//
//	store.Clean()                       // reclaim slots with no refs left
//
// # Lifecycle
//
// Refs carry an atomic strong count shared by all clones. Releasing the
// last clone does not free the slot; it only marks it reclaimable. The
// owner frees reclaimable slots explicitly, either in bulk with Clean or
// eagerly with Remove. Deferring the free to the owner is the point of the
// design: an object dropped by a foreign goroutine must never be torn down
// on that goroutine.
//
// # Contract
//
// Store methods are not synchronized; call them only from the owner.
// Using a ref against a store that did not issue it, resolving a ref whose
// slot was already reclaimed, or releasing a ref twice are programming
// errors and panic (ErrForeignRef, ErrStaleRef, ErrReleasedRef). Remove's
// "other clones still exist" outcome is the only expected negative result
// and is reported as a plain false.
//
// For owners pinned with runtime.LockOSThread, WithThreadGuard() upgrades
// the owner-only contract to an enforced check on every store access.
package refstore
