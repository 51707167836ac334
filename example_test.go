package refstore_test

import (
	"fmt"
	"sync"

	"github.com/hupe1980/refstore"
)

// session stands in for anything that must never be touched off its owning
// goroutine: an FFI context, a GUI widget, a connection with unguarded state.
type session struct {
	user string
	hits int
}

func Example() {
	store := refstore.New[*session]()

	ref := store.Insert(&session{user: "alice"})

	// Refs travel freely; the session itself never leaves the owner.
	var wg sync.WaitGroup
	wg.Add(1)
	clone := ref.Clone()
	go func() {
		defer wg.Done()
		// Bookkeeping only; release when done.
		clone.Release()
	}()
	wg.Wait()

	// Owner side: resolve and mutate.
	(*store.Get(ref)).hits++
	fmt.Println((*store.Get(ref)).user, (*store.Get(ref)).hits)

	// Drop the last ref and sweep.
	ref.Release()
	store.Clean()
	fmt.Println("live:", store.Len())

	// Output:
	// alice 1
	// live: 0
}

func ExampleStore_Remove() {
	store := refstore.New[string]()

	ref := store.Insert("payload")
	clone := ref.Clone()

	// Other clones still exist: nothing is removed.
	if _, ok := store.Remove(ref); !ok {
		fmt.Println("still referenced")
	}

	// The last clone tears the slot down eagerly.
	if value, ok := store.Remove(clone); ok {
		fmt.Println("freed:", value)
	}

	// Output:
	// still referenced
	// freed: payload
}
