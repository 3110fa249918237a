package middleware

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/piresc/unityride/internal/pkg/constants"
	"github.com/piresc/unityride/internal/pkg/logger"
	"github.com/piresc/unityride/internal/utils"
)

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	RedisClient *redis.Client
	Resource    string        // logical name, part of the Redis key
	Limit       int           // maximum requests per period
	Period      time.Duration // fixed window length
}

// windowScript counts a hit and opens the window in one step. A key left
// without a TTL gets one on its next hit.
var windowScript = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if count == 1 or redis.call("PTTL", KEYS[1]) < 0 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return {count, redis.call("PTTL", KEYS[1])}
`)

// RateLimiterMiddleware is a fixed-window limiter keyed by user id, falling
// back to the client IP for anonymous requests.
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identifier := c.RealIP()
			if userID, ok := c.Get(ContextKeyUserID).(string); ok && userID != "" {
				identifier = userID
			}

			key := fmt.Sprintf(constants.KeyRateLimit, config.Resource, identifier)
			ctx := c.Request().Context()

			res, err := windowScript.Run(ctx, config.RedisClient, []string{key}, config.Period.Milliseconds()).Int64Slice()
			if err != nil || len(res) != 2 {
				logger.WarnCtx(ctx, "Rate limiter unavailable", logger.String("key", key), logger.Err(err))
				return utils.InternalServerErrorResponse(c, "Rate limiter error")
			}
			count, ttl := res[0], time.Duration(res[1])*time.Millisecond

			h := c.Response().Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))

			if count > int64(config.Limit) {
				if ttl <= 0 {
					ttl = config.Period
				}
				h.Set("X-RateLimit-Remaining", "0")
				h.Set("Retry-After", strconv.FormatInt(int64(ttl.Seconds()), 10))
				return utils.TooManyRequestsResponse(c)
			}

			h.Set("X-RateLimit-Remaining", strconv.FormatInt(int64(config.Limit)-count, 10))
			return next(c)
		}
	}
}
