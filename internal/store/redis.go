package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists each collection as a single JSON string value under
// "<prefix>:<kind>". This is the closest server-side analogue of the
// original key-value layout and suits the whole-collection replace
// semantics of the entity store contract. Values carry no TTL.
type RedisStore struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisStore wraps an existing Redis client. The prefix namespaces the
// collection keys; an empty prefix defaults to "entities".
func NewRedisStore(rdb *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "entities"
	}
	return &RedisStore{rdb: rdb, prefix: prefix}
}

func (s *RedisStore) key(kind Kind) string {
	return s.prefix + ":" + string(kind)
}

// Load fetches and unmarshals the collection for kind into dest. A missing
// key yields an empty collection.
func (s *RedisStore) Load(ctx context.Context, kind Kind, dest any) error {
	if err := checkKind(kind); err != nil {
		return err
	}
	raw, err := s.rdb.Get(ctx, s.key(kind)).Bytes()
	if errors.Is(err, redis.Nil) {
		raw = []byte("[]")
	} else if err != nil {
		return fmt.Errorf("redis get %s: %w", s.key(kind), err)
	}
	return json.Unmarshal(raw, dest)
}

// Save replaces the collection for kind with records.
func (s *RedisStore) Save(ctx context.Context, kind Kind, records any) error {
	if err := checkKind(kind); err != nil {
		return err
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, s.key(kind), raw, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", s.key(kind), err)
	}
	return nil
}
