package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists each record as one Redis key. Records are written
// without expiry; Redis persistence settings decide their durability.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore wraps an already connected client.
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (r *RedisStore) Get(ctx context.Context, name string) ([]byte, bool, error) {
	body, err := r.rdb.Get(ctx, name).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read record %s: %w", name, err)
	}
	return body, true, nil
}

func (r *RedisStore) Set(ctx context.Context, name string, body []byte) error {
	if err := r.rdb.Set(ctx, name, body, 0).Err(); err != nil {
		return fmt.Errorf("write record %s: %w", name, err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, name string) error {
	if err := r.rdb.Del(ctx, name).Err(); err != nil {
		return fmt.Errorf("delete record %s: %w", name, err)
	}
	return nil
}
