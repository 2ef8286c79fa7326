package core

import "context"

// Store defines the contract for the persistent recipe store.
// Adhering to this interface keeps the repository independent of the
// underlying storage mechanism (Filesystem, SQL, S3, etc).
//
// The store is dumb on purpose: no ordering, no duplicate checks, no
// update semantics. Those invariants belong to the Repository, which is
// the only component permitted to touch the store directly.
type Store interface {
	// Save persists a recipe. It creates if not exists, or overwrites if it does.
	Save(ctx context.Context, r Recipe) error

	// Get retrieves a recipe by its ID. Returns ErrNotFound if absent.
	Get(ctx context.Context, id string) (Recipe, error)

	// List returns all stored recipes in no particular order.
	List(ctx context.Context) ([]Recipe, error)

	// Delete removes a recipe by its ID. Returns ErrNotFound if absent.
	Delete(ctx context.Context, id string) error

	// Initialize ensures the underlying storage is ready (e.g. create directories).
	Initialize(ctx context.Context) error
}

// Watchable defines an interface for stores that can report external changes.
type Watchable interface {
	// Watch observes changes matching the given glob pattern.
	// The channel is closed when ctx is cancelled.
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}
