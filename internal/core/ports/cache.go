package ports

import (
	"context"
	"time"
)

// Cache is a read-through byte cache for query results. A miss is reported
// with ok=false, not an error; errors are reserved for transport failures.
type Cache interface {
	// Get returns the cached value for key, with ok=false on a miss.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Set stores value under key with a time-to-live.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete evicts key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
