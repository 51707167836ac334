package refstore

import "errors"

// Contract-violation sentinels. These are used as panic values, not as
// returned errors: each one indicates a logic bug in the caller, never an
// environmental condition, so there is nothing to recover from.
var (
	// ErrForeignRef means a ref was used against a store that did not
	// issue it. The slot the ref points at belongs to a different lineage.
	ErrForeignRef = errors.New("refstore: ref does not belong to this store")

	// ErrStaleRef means the ref's slot was already reclaimed by Clean or
	// Remove. Refs must not be resolved after their slot is gone.
	ErrStaleRef = errors.New("refstore: ref is stale, slot already reclaimed")

	// ErrReleasedRef means a ref was used after Release, or after being
	// surrendered to Remove.
	ErrReleasedRef = errors.New("refstore: ref already released")
)
