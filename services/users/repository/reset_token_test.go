package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/piresc/unityride/internal/pkg/apperr"
	"github.com/piresc/unityride/internal/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockRedis(t *testing.T) (*database.RedisClient, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to create miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return &database.RedisClient{Client: client}, mr
}

func TestResetTokenStore_SaveAndConsume(t *testing.T) {
	// Arrange
	rc, mr := setupMockRedis(t)
	store := NewResetTokenStore(rc)
	ctx := context.Background()

	// Act
	require.NoError(t, store.Save(ctx, "digest", "u1", 30*time.Minute))
	userID, err := store.Consume(ctx, "digest")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
	assert.False(t, mr.Exists("password:reset:digest"))
}

func TestResetTokenStore_SingleUse(t *testing.T) {
	rc, _ := setupMockRedis(t)
	store := NewResetTokenStore(rc)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "digest", "u1", time.Minute))

	_, err := store.Consume(ctx, "digest")
	require.NoError(t, err)
	_, err = store.Consume(ctx, "digest")

	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestResetTokenStore_Expired(t *testing.T) {
	// Arrange
	rc, mr := setupMockRedis(t)
	store := NewResetTokenStore(rc)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "digest", "u1", time.Minute))
	assert.Equal(t, time.Minute, mr.TTL("password:reset:digest"))

	// Act
	mr.FastForward(2 * time.Minute)
	_, err := store.Consume(ctx, "digest")

	// Assert
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
