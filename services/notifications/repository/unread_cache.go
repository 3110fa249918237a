package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/unityride/internal/pkg/constants"
	"github.com/piresc/unityride/internal/pkg/database"
	"github.com/piresc/unityride/internal/pkg/models"
)

// generationTTL only has to outlive one count-and-fill round trip
const generationTTL = time.Hour

// bumpScript moves the generation and increments the counter only when it is
// already cached, so a miss never produces a count that ignores the rows
// already in Postgres.
var bumpScript = redis.NewScript(`
redis.call("INCR", KEYS[2])
redis.call("PEXPIRE", KEYS[2], ARGV[1])
if redis.call("EXISTS", KEYS[1]) == 1 then
	return redis.call("INCR", KEYS[1])
end
return -1
`)

var invalidateScript = redis.NewScript(`
redis.call("INCR", KEYS[2])
redis.call("PEXPIRE", KEYS[2], ARGV[1])
return redis.call("DEL", KEYS[1])
`)

// fillScript stores a freshly counted value unless a write moved the
// generation after the caller's miss.
var fillScript = redis.NewScript(`
local gen = redis.call("GET", KEYS[2])
if gen == false then gen = "" end
if gen ~= ARGV[1] then
	return 0
end
if tonumber(ARGV[3]) > 0 then
	redis.call("SET", KEYS[1], ARGV[2], "PX", ARGV[3])
else
	redis.call("SET", KEYS[1], ARGV[2])
end
return 1
`)

// UnreadCache stores unread counters in Redis
type UnreadCache struct {
	redis *database.RedisClient
	ttl   time.Duration
}

// NewUnreadCache creates a Redis backed unread counter cache
func NewUnreadCache(redisClient *database.RedisClient, ttl time.Duration) *UnreadCache {
	return &UnreadCache{redis: redisClient, ttl: ttl}
}

func unreadKeys(userID string) []string {
	return []string{
		fmt.Sprintf(constants.KeyUnreadCount, userID),
		fmt.Sprintf(constants.KeyUnreadGen, userID),
	}
}

// Get reads the cached counter together with the current generation
func (c *UnreadCache) Get(ctx context.Context, userID string) (models.UnreadSnapshot, error) {
	vals, err := c.redis.Client.MGet(ctx, unreadKeys(userID)...).Result()
	if err != nil {
		return models.UnreadSnapshot{}, fmt.Errorf("failed to get unread count: %w", err)
	}

	var snap models.UnreadSnapshot
	if gen, ok := vals[1].(string); ok {
		snap.Generation = gen
	}
	if raw, ok := vals[0].(string); ok {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return models.UnreadSnapshot{}, fmt.Errorf("corrupt unread count %q: %w", raw, err)
		}
		snap.Count, snap.Hit = n, true
	}
	return snap, nil
}

// Fill caches count if the generation still matches the one seen by Get.
// It reports whether the value was stored.
func (c *UnreadCache) Fill(ctx context.Context, userID string, count int, generation string) (bool, error) {
	stored, err := fillScript.Run(ctx, c.redis.Client, unreadKeys(userID),
		generation, count, c.ttl.Milliseconds()).Int()
	if err != nil {
		return false, fmt.Errorf("failed to set unread count: %w", err)
	}
	return stored == 1, nil
}

// IncrIfPresent increments a cached counter and leaves misses alone
func (c *UnreadCache) IncrIfPresent(ctx context.Context, userID string) error {
	if err := bumpScript.Run(ctx, c.redis.Client, unreadKeys(userID), generationTTL.Milliseconds()).Err(); err != nil {
		return fmt.Errorf("failed to increment unread count: %w", err)
	}
	return nil
}

// Invalidate drops the cached counter
func (c *UnreadCache) Invalidate(ctx context.Context, userID string) error {
	if err := invalidateScript.Run(ctx, c.redis.Client, unreadKeys(userID), generationTTL.Milliseconds()).Err(); err != nil {
		return fmt.Errorf("failed to invalidate unread count: %w", err)
	}
	return nil
}
