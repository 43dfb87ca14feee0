package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTokenTestRepo(t *testing.T, exp time.Duration) (*TokenCacheRepository, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewTokenCacheRepository(client, exp), mr
}

func TestTokenCacheRepository(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTokenTestRepo(t, time.Hour)

	used, err := repo.IsConsumed(ctx, "token-1")
	assert.NoError(t, err)
	assert.False(t, used)

	assert.NoError(t, repo.MarkConsumed(ctx, "token-1"))

	used, err = repo.IsConsumed(ctx, "token-1")
	assert.NoError(t, err)
	assert.True(t, used)

	// other token ids are unaffected
	used, err = repo.IsConsumed(ctx, "token-2")
	assert.NoError(t, err)
	assert.False(t, used)
}

func TestTokenCacheRepository_Expiration(t *testing.T) {
	ctx := context.Background()
	repo, mr := newTokenTestRepo(t, time.Minute)

	assert.NoError(t, repo.MarkConsumed(ctx, "token-1"))

	// the consumption record outlives any token still in flight
	mr.FastForward(30 * time.Second)
	used, err := repo.IsConsumed(ctx, "token-1")
	assert.NoError(t, err)
	assert.True(t, used)

	mr.FastForward(time.Minute)
	used, err = repo.IsConsumed(ctx, "token-1")
	assert.NoError(t, err)
	assert.False(t, used)
}
