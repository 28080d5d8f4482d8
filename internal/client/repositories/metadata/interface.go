// Package metadata stores scalar cache bookkeeping, such as the sync
// checkpoint, as key/value rows next to the cached entities.
package metadata

import (
	"context"
)

// CheckpointKey holds the server timestamp of the last applied diff.
const CheckpointKey = "server_timestamp"

type Repository interface {
	// Get returns (nil, nil) when key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error

	// GetInt returns ok=false when key is absent.
	GetInt(ctx context.Context, key string) (v int64, ok bool, err error)
	SetInt(ctx context.Context, key string, v int64) error
}
