package port

import (
	"context"
)

// AdStore is the key-value persistence the ad cache reads from and writes
// to. It is an outbound port in hexagonal architecture. Values are opaque
// strings; the cache owns their encoding. Implementations are not required
// to make a Get followed by a Set atomic.
type AdStore interface {
	// Get returns the value stored under key. found is false when nothing
	// is stored; err is reserved for backend failures.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	// Set overwrites the value stored under key.
	Set(ctx context.Context, key, value string) error
}
