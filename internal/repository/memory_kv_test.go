package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryKVRepo(t *testing.T) {
	repo := NewMemoryKVRepo()
	ctx := context.Background()

	_, ok, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Put(ctx, "k", "v1"))
	require.NoError(t, repo.Put(ctx, "k", "v2"))
	v, ok, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v2", v)

	_, ok, _ = repo.Get(ctx, "other")
	assert.False(t, ok)
}
