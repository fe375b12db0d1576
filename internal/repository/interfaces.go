package repository

import "context"

// KVRepo is a durable string key-value store. Get reports a missing key
// with ok == false rather than an error.
type KVRepo interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Put(ctx context.Context, key, value string) error
}

var (
	_ KVRepo = (*SQLKVRepo)(nil)
	_ KVRepo = (*RedisKVRepo)(nil)
	_ KVRepo = (*MemoryKVRepo)(nil)
)
