/*
Package cache stores rendered transition tables keyed by a content hash
of the source description. The HTTP server consults it before
translating, since the construction is a pure function of its input.
*/
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
)

// Store is the port every table cache implements.
type Store interface {
	// Get returns the cached table for the key, and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	// Put stores the table under the key.
	Put(ctx context.Context, key string, table string) error
}

// Key derives the cache key for a machine description.
func Key(description []byte) string {
	sum := sha256.Sum256(description)
	return hex.EncodeToString(sum[:])
}
