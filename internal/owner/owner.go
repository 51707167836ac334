// Package owner provides an opt-in OS thread affinity guard.
//
// The guard exists for callers that pin the store's owner goroutine with
// runtime.LockOSThread (FFI contexts, GUI main loops) and want every access
// from a foreign thread to fail loudly instead of corrupting state. On
// platforms without a cheap thread id the guard degrades to a no-op.
package owner

import "fmt"

// Guard remembers the OS thread it was captured on. The zero value is a
// disabled guard whose Check never fails.
type Guard struct {
	tid uint64
}

// Capture returns a guard bound to the current OS thread.
//
// The calling goroutine should be locked to its thread with
// runtime.LockOSThread; without that, goroutine migration will trip the
// guard on a later Check.
func Capture() Guard {
	return Guard{tid: threadID()}
}

// Enabled reports whether the guard is active on this platform.
func (g Guard) Enabled() bool {
	return g.tid != 0
}

// Check panics if called from a different OS thread than the one the guard
// was captured on. A disabled guard returns immediately.
func (g Guard) Check() {
	if g.tid == 0 {
		return
	}
	if tid := threadID(); tid != g.tid {
		panic(fmt.Sprintf("owner: store accessed from thread %d, owned by thread %d", tid, g.tid))
	}
}
