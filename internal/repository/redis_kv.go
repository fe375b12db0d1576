package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisKVRepo implements KVRepo on a Redis server. Keys are namespaced with
// a prefix so several workbenches can share one database.
type RedisKVRepo struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisKVRepo connects to addr and pings it before returning.
func NewRedisKVRepo(ctx context.Context, addr, prefix string) (*RedisKVRepo, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &RedisKVRepo{rdb: rdb, prefix: prefix}, nil
}

func (r *RedisKVRepo) key(k string) string { return r.prefix + k }

func (r *RedisKVRepo) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := r.rdb.Get(ctx, r.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return v, true, nil
}

func (r *RedisKVRepo) Put(ctx context.Context, key, value string) error {
	if err := r.rdb.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Close releases the client connection pool.
func (r *RedisKVRepo) Close() error {
	return r.rdb.Close()
}
