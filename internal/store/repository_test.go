package store

import (
	"context"
	"testing"

	"github.com/mkondo/go-todo-service/internal/docstore"
	"github.com/mkondo/go-todo-service/internal/logger"
)

// newTestStorages wires the repositories over a fresh in-memory document
// store, mirroring the production wiring in NewStorages.
func newTestStorages(t *testing.T) *Storages {
	t.Helper()

	ds := docstore.NewMemoryStore()
	l := logger.Nop()
	sequences := NewSequenceRepository(ds, l)

	return &Storages{
		SequenceRepository: sequences,
		UserRepository:     NewUserRepository(ds, sequences, l),
		TodoRepository:     NewTodoRepository(ds, sequences, l),
	}
}

// failingStore implements docstore.Store and fails every call with err.
type failingStore struct {
	err error
}

func (f *failingStore) Query(context.Context, string, string) ([][]byte, error) {
	return nil, f.err
}

func (f *failingStore) QueryIndex(context.Context, string, string, string) ([][]byte, error) {
	return nil, f.err
}

func (f *failingStore) Scan(context.Context, string) ([][]byte, error) {
	return nil, f.err
}

func (f *failingStore) Put(context.Context, string, docstore.Key, []byte, ...docstore.IndexEntry) error {
	return f.err
}

func (f *failingStore) Delete(context.Context, string, docstore.Key, ...docstore.IndexEntry) error {
	return f.err
}

func (f *failingStore) Increment(context.Context, string, int64) (int64, error) {
	return 0, f.err
}
