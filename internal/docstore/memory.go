package docstore

import (
	"context"
	"fmt"
	"sync"
)

// memoryStore is a process-local Store used in tests and for local
// development without a Redis instance. A single mutex guards all state;
// the data volumes this driver is meant for make finer-grained locking
// unnecessary.
type memoryStore struct {
	mu       sync.Mutex
	docs     map[string]map[string]map[string][]byte // collection → partition → sort → doc
	index    map[string]map[string]struct{}          // idx composite key → member set
	unique   map[string]map[string]string            // uniq composite key → value → owner member
	counters map[string]int64
}

// NewMemoryStore returns an empty in-memory Store.
func NewMemoryStore() Store {
	return &memoryStore{
		docs:     make(map[string]map[string]map[string][]byte),
		index:    make(map[string]map[string]struct{}),
		unique:   make(map[string]map[string]string),
		counters: make(map[string]int64),
	}
}

func (s *memoryStore) partition(collection, partition string) map[string][]byte {
	col, ok := s.docs[collection]
	if !ok {
		col = make(map[string]map[string][]byte)
		s.docs[collection] = col
	}

	part, ok := col[partition]
	if !ok {
		part = make(map[string][]byte)
		col[partition] = part
	}
	return part
}

func cloneDoc(doc []byte) []byte {
	out := make([]byte, len(doc))
	copy(out, doc)
	return out
}

func (s *memoryStore) Query(_ context.Context, collection, partition string) ([][]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var docs [][]byte
	for _, doc := range s.docs[collection][partition] {
		docs = append(docs, cloneDoc(doc))
	}
	return docs, nil
}

func (s *memoryStore) QueryIndex(_ context.Context, collection, index, value string) ([][]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var members []string
	for member := range s.index[idxKey(collection, index, value)] {
		members = append(members, member)
	}
	// a unique index keeps its claims separately from the member sets
	if owner, ok := s.unique[uniqKey(collection, index)][value]; ok {
		members = append(members, owner)
	}

	var docs [][]byte
	for _, member := range members {
		key := decodeMember(member)
		if doc, ok := s.docs[collection][key.Partition][sortField(key)]; ok {
			docs = append(docs, cloneDoc(doc))
		}
	}
	return docs, nil
}

func (s *memoryStore) Scan(_ context.Context, collection string) ([][]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var docs [][]byte
	for _, part := range s.docs[collection] {
		for _, doc := range part {
			docs = append(docs, cloneDoc(doc))
		}
	}
	return docs, nil
}

func (s *memoryStore) Put(_ context.Context, collection string, key Key, doc []byte, entries ...IndexEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	member := encodeMember(key)

	for _, e := range entries {
		if !e.Unique {
			continue
		}

		claims, ok := s.unique[uniqKey(collection, e.Index)]
		if !ok {
			claims = make(map[string]string)
			s.unique[uniqKey(collection, e.Index)] = claims
		}

		if owner, claimed := claims[e.Value]; claimed && owner != member {
			return fmt.Errorf("%w: %s=%q", ErrDuplicate, e.Index, e.Value)
		}
		claims[e.Value] = member
	}

	s.partition(collection, key.Partition)[sortField(key)] = cloneDoc(doc)

	for _, e := range entries {
		if e.Unique {
			continue
		}

		members, ok := s.index[idxKey(collection, e.Index, e.Value)]
		if !ok {
			members = make(map[string]struct{})
			s.index[idxKey(collection, e.Index, e.Value)] = members
		}
		members[member] = struct{}{}
	}

	return nil
}

func (s *memoryStore) Delete(_ context.Context, collection string, key Key, entries ...IndexEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	member := encodeMember(key)
	delete(s.docs[collection][key.Partition], sortField(key))

	for _, e := range entries {
		if e.Unique {
			delete(s.unique[uniqKey(collection, e.Index)], e.Value)
		} else {
			delete(s.index[idxKey(collection, e.Index, e.Value)], member)
		}
	}

	return nil
}

func (s *memoryStore) Increment(_ context.Context, counter string, delta int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counters[counter] += delta
	return s.counters[counter], nil
}
