package storage

import "context"

// Store is the document-store port the repositories sit on. Records are JSON
// blobs addressed by key, with plain string sets used as per-collection
// indexes. Implementations own durability and concurrency; callers treat
// each key as a single-writer aggregate.
type Store interface {
	// Get retrieves the record stored under key. Returns ErrKeyNotFound when
	// the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a record under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the record stored under key.
	Delete(ctx context.Context, key string) error

	// AddToIndex adds a member to the named index set.
	AddToIndex(ctx context.Context, index, member string) error

	// RemoveFromIndex removes a member from the named index set.
	RemoveFromIndex(ctx context.Context, index, member string) error

	// IndexMembers returns all members of the named index set.
	IndexMembers(ctx context.Context, index string) ([]string, error)

	// Ping checks if the store is reachable.
	Ping(ctx context.Context) error

	// Close closes the store connection.
	Close() error
}
