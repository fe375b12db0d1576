package repository

import (
	"context"
	"sync"
)

// MemoryKVRepo keeps entries in process memory. Nothing survives a restart.
type MemoryKVRepo struct {
	mu      sync.RWMutex
	entries map[string]string
}

func NewMemoryKVRepo() *MemoryKVRepo {
	return &MemoryKVRepo{entries: make(map[string]string)}
}

func (r *MemoryKVRepo) Get(_ context.Context, key string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.entries[key]
	return v, ok, nil
}

func (r *MemoryKVRepo) Put(_ context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[key] = value
	return nil
}
