package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/unityride/internal/pkg/apperr"
	"github.com/piresc/unityride/internal/pkg/constants"
	"github.com/piresc/unityride/internal/pkg/database"
)

// ResetTokenStore keeps sha256 digests of password reset tokens in Redis
type ResetTokenStore struct {
	redis *database.RedisClient
}

// NewResetTokenStore creates a Redis backed reset token store
func NewResetTokenStore(redisClient *database.RedisClient) *ResetTokenStore {
	return &ResetTokenStore{redis: redisClient}
}

// Save maps a token digest to its user until ttl elapses
func (s *ResetTokenStore) Save(ctx context.Context, tokenHash, userID string, ttl time.Duration) error {
	key := fmt.Sprintf(constants.KeyPasswordReset, tokenHash)
	if err := s.redis.Client.Set(ctx, key, userID, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save reset token: %w", err)
	}
	return nil
}

// Consume returns the user behind a token digest and removes it in the same
// round trip, so a token redeems once.
func (s *ResetTokenStore) Consume(ctx context.Context, tokenHash string) (string, error) {
	key := fmt.Sprintf(constants.KeyPasswordReset, tokenHash)
	userID, err := s.redis.Client.GetDel(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", apperr.NotFound("reset token")
	}
	if err != nil {
		return "", fmt.Errorf("failed to consume reset token: %w", err)
	}
	return userID, nil
}
