package entities

import "context"

// Repository is a keyed blob store partitioned by entity kind.
type Repository interface {
	// List returns the payloads of every row of kind, ordered by key.
	List(ctx context.Context, kind string) ([][]byte, error)

	// Upsert inserts the row or replaces the payload of an existing one.
	Upsert(ctx context.Context, kind, key string, data []byte) error

	// Delete removes the row if present.
	Delete(ctx context.Context, kind, key string) error

	// Clear removes every row of every kind.
	Clear(ctx context.Context) error
}
