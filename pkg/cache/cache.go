// Package cache memoises solve results between CLI runs.
//
// # Overview
//
// Building a decision diagram is the expensive part of solving a board, and
// the result depends only on the board, the routed pairs and the edge
// ordering. The CLI stores a compact summary of each solve (solution count,
// diagram size, the first few solutions) under a key derived from those
// inputs. Diagrams themselves are never persisted.
//
// # Backends
//
//   - [FileCache]: one JSON file per entry below a directory, with optional
//     expiry. Used by the CLI.
//   - [NullCache]: stores nothing. Used by --no-cache and tests.
//
// [Observed] wraps any backend and reports hits, misses and writes to the
// hooks registered in [observability].
//
// # Keys
//
// A [Keyer] derives keys from the solve inputs. [ScopedKeyer] prefixes every
// key, which the CLI uses to keep entries written by different releases
// apart.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the stored value and true, or false on a miss. Expired
	// or unreadable entries are misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend.
	Close() error
}

// TTLSummary is how long a solve summary is kept. Summaries only depend on
// their inputs, so the limit merely bounds the size of the cache directory.
const TTLSummary = 30 * 24 * time.Hour
