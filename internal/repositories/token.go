package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"biblioteca-api/internal/logger"
)

// TokenCacheRepository tracks consumed one-time tokens in Redis.
// Verification and password-reset tokens are single-use: once exchanged, the
// token's jti is recorded here until the token would have expired anyway.
type TokenCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewTokenCacheRepository creates the repository. The expiration should be at
// least as long as the longest-lived one-time token.
func NewTokenCacheRepository(client *redis.Client, expiration time.Duration) *TokenCacheRepository {
	return &TokenCacheRepository{client: client, exp: expiration}
}

func (r *TokenCacheRepository) key(tokenID string) string {
	return fmt.Sprintf("consumed_token:%s", tokenID)
}

// IsConsumed reports whether the token id was already exchanged.
func (r *TokenCacheRepository) IsConsumed(ctx context.Context, tokenID string) (bool, error) {
	key := r.key(tokenID)

	_, err := r.client.Get(ctx, key).Result()

	logger.Log.Infow("token cache get",
		"key", key,
		"error", err,
	)

	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// MarkConsumed records the token id so a second exchange is refused.
func (r *TokenCacheRepository) MarkConsumed(ctx context.Context, tokenID string) error {
	key := r.key(tokenID)

	err := r.client.Set(ctx, key, "1", r.exp).Err()

	logger.Log.Infow("token cache set",
		"key", key,
		"error", err,
	)

	return err
}
