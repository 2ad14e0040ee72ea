package docstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/mkondo/go-todo-service/internal/logger"
)

// Redis keyspace layout:
//
//	doc:{collection}:{partition}   hash  sort → JSON document
//	idx:{collection}:{index}:{v}   set   of encoded member keys
//	uniq:{collection}:{index}      hash  value → encoded owner key
//	ctr:{counter}                  string, used with INCRBY
//
// Counters rely on Redis' native INCRBY, which gives the sequence allocator
// its no-duplicates/no-gaps guarantee without explicit locking.
const (
	docPrefix  = "doc:"
	idxPrefix  = "idx:"
	uniqPrefix = "uniq:"
	ctrPrefix  = "ctr:"

	// noSort is the hash field used for documents whose key has no sort
	// component.
	noSort = "-"

	// memberSep joins partition and sort into a single index member string.
	memberSep = "\x1f"
)

type redisStore struct {
	client *redis.Client
	logger *logger.Logger
}

// NewRedisStore connects to Redis at addr and returns a Store backed by it.
// The connection is verified with a ping before the store is returned.
func NewRedisStore(ctx context.Context, addr, password string, db int, log *logger.Logger) (Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("addr", addr).Msg("redis ping failed")
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	log.Info().Str("addr", addr).Msg("connected to redis")

	return &redisStore{client: client, logger: log}, nil
}

func docKey(collection, partition string) string {
	return docPrefix + collection + ":" + partition
}

func idxKey(collection, index, value string) string {
	return idxPrefix + collection + ":" + index + ":" + value
}

func uniqKey(collection, index string) string {
	return uniqPrefix + collection + ":" + index
}

func sortField(key Key) string {
	if key.Sort == "" {
		return noSort
	}
	return key.Sort
}

func encodeMember(key Key) string {
	return key.Partition + memberSep + key.Sort
}

func decodeMember(member string) Key {
	partition, sort, _ := strings.Cut(member, memberSep)
	return Key{Partition: partition, Sort: sort}
}

func (s *redisStore) Query(ctx context.Context, collection, partition string) ([][]byte, error) {
	values, err := s.client.HVals(ctx, docKey(collection, partition)).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	docs := make([][]byte, 0, len(values))
	for _, v := range values {
		docs = append(docs, []byte(v))
	}
	return docs, nil
}

func (s *redisStore) QueryIndex(ctx context.Context, collection, index, value string) ([][]byte, error) {
	members, err := s.client.SMembers(ctx, idxKey(collection, index, value)).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	// a unique index keeps its claims in a separate hash
	owner, err := s.client.HGet(ctx, uniqKey(collection, index), value).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if owner != "" {
		members = append(members, owner)
	}

	docs := make([][]byte, 0, len(members))
	for _, m := range members {
		key := decodeMember(m)
		doc, err := s.client.HGet(ctx, docKey(collection, key.Partition), sortField(key)).Result()
		if errors.Is(err, redis.Nil) {
			// stale index entry, the document itself is gone
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		docs = append(docs, []byte(doc))
	}
	return docs, nil
}

func (s *redisStore) Scan(ctx context.Context, collection string) ([][]byte, error) {
	var (
		docs   [][]byte
		cursor uint64
	)
	match := docPrefix + collection + ":*"

	for {
		keys, next, err := s.client.Scan(ctx, cursor, match, 100).Result()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}

		for _, k := range keys {
			values, err := s.client.HVals(ctx, k).Result()
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
			}
			for _, v := range values {
				docs = append(docs, []byte(v))
			}
		}

		cursor = next
		if cursor == 0 {
			return docs, nil
		}
	}
}

func (s *redisStore) Put(ctx context.Context, collection string, key Key, doc []byte, entries ...IndexEntry) error {
	member := encodeMember(key)

	// Claim unique entries first so a lost race leaves no partial document
	// behind. HSETNX is the store-level insert-if-absent primitive.
	for _, e := range entries {
		if !e.Unique {
			continue
		}

		claimed, err := s.client.HSetNX(ctx, uniqKey(collection, e.Index), e.Value, member).Result()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		if claimed {
			continue
		}

		owner, err := s.client.HGet(ctx, uniqKey(collection, e.Index), e.Value).Result()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		if owner != member {
			return fmt.Errorf("%w: %s=%q", ErrDuplicate, e.Index, e.Value)
		}
	}

	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, docKey(collection, key.Partition), sortField(key), doc)
	for _, e := range entries {
		if !e.Unique {
			pipe.SAdd(ctx, idxKey(collection, e.Index, e.Value), member)
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func (s *redisStore) Delete(ctx context.Context, collection string, key Key, entries ...IndexEntry) error {
	member := encodeMember(key)

	pipe := s.client.TxPipeline()
	pipe.HDel(ctx, docKey(collection, key.Partition), sortField(key))
	for _, e := range entries {
		if e.Unique {
			pipe.HDel(ctx, uniqKey(collection, e.Index), e.Value)
		} else {
			pipe.SRem(ctx, idxKey(collection, e.Index, e.Value), member)
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func (s *redisStore) Increment(ctx context.Context, counter string, delta int64) (int64, error) {
	value, err := s.client.IncrBy(ctx, ctrPrefix+counter, delta).Result()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return value, nil
}
