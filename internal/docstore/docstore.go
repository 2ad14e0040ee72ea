// Package docstore abstracts the schemaless document store the service
// persists into. It exposes exactly the capability set the repositories
// need: point queries by partition key, secondary-index queries, full
// scans, puts with index maintenance, deletes, and an atomic counter
// increment.
//
// Two drivers are provided: a Redis-backed store for production and a
// mutex-guarded in-memory store for tests and local development. Documents
// are opaque byte slices (JSON-encoded by the repositories); the store
// never interprets their contents.
package docstore

import (
	"context"
	"errors"
)

// Key identifies a single document inside a collection. Partition is
// required; Sort is optional and empty for collections keyed by partition
// alone. For todos the partition is the todo id and the sort component is
// the creation timestamp, so the timestamp is physically part of the key
// and must never change after the first Put.
type Key struct {
	Partition string
	Sort      string
}

// IndexEntry registers a document under a named secondary index.
// A Unique entry additionally acts as a store-level insert-if-absent
// constraint: a Put fails with ErrDuplicate when another key already
// claimed the same value.
type IndexEntry struct {
	Index  string
	Value  string
	Unique bool
}

// Sentinel errors returned by Store implementations. Callers should match
// against these values with [errors.Is].
var (
	// ErrDuplicate is returned by Put when a Unique index entry is already
	// claimed by a different document key.
	ErrDuplicate = errors.New("unique index value already claimed")

	// ErrUnavailable wraps any transport or engine-level failure. The store
	// performs no retries; transient failures surface immediately.
	ErrUnavailable = errors.New("document store unavailable")
)

// Store is the abstracted capability set consumed by the repositories.
//
// Every method is safe for concurrent use. Increment is the only operation
// with a cross-document atomicity guarantee; all others touch a single
// document plus its index entries.
type Store interface {
	// Query returns every document stored under partition, across all sort
	// values, in store-determined order. A missing partition yields an
	// empty result, not an error.
	Query(ctx context.Context, collection, partition string) ([][]byte, error)

	// QueryIndex returns every document whose entry under the named
	// secondary index equals value. Unique indexes are queryable the same
	// way and yield at most one document.
	QueryIndex(ctx context.Context, collection, index, value string) ([][]byte, error)

	// Scan returns every document in the collection, order unspecified.
	Scan(ctx context.Context, collection string) ([][]byte, error)

	// Put stores doc under key, overwriting any previous document at the
	// same key, and registers the given secondary-index entries. Re-putting
	// a Unique entry already owned by the same key succeeds.
	Put(ctx context.Context, collection string, key Key, doc []byte, entries ...IndexEntry) error

	// Delete removes the document at key together with the given index
	// entries. Deleting an absent key is not an error.
	Delete(ctx context.Context, collection string, key Key, entries ...IndexEntry) error

	// Increment atomically adds delta to the named counter and returns the
	// new value. A counter that does not exist yet is implicitly created at
	// zero before the increment. Concurrent callers never observe duplicate
	// or skipped values.
	Increment(ctx context.Context, counter string, delta int64) (int64, error)
}
