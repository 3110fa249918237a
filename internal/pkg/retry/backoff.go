package retry

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/piresc/unityride/internal/pkg/logger"
)

// Operation is a unit of work that may be attempted more than once
type Operation func(ctx context.Context) error

// Config holds backoff settings
type Config struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Multiplier  float64
	Jitter      bool
}

// StartupConfig is used while waiting for backing services to come up
func StartupConfig() Config {
	return Config{
		MaxAttempts: 6,
		BaseDelay:   250 * time.Millisecond,
		MaxDelay:    5 * time.Second,
		Multiplier:  2.0,
		Jitter:      true,
	}
}

// Retrier runs an operation with exponential backoff
type Retrier struct {
	config Config
	logger *logger.ZapLogger
}

// New creates a retrier. A nil logger disables attempt logging.
func New(config Config, l *logger.ZapLogger) *Retrier {
	if config.MaxAttempts < 1 {
		config.MaxAttempts = 1
	}
	if config.Multiplier < 1 {
		config.Multiplier = 1
	}
	return &Retrier{config: config, logger: l}
}

// Do runs op until it succeeds, the attempts run out or ctx is done.
// name identifies the dependency in logs and in the returned error.
func (r *Retrier) Do(ctx context.Context, name string, op Operation) error {
	var lastErr error
	for attempt := 1; attempt <= r.config.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = op(ctx)
		if lastErr == nil {
			if attempt > 1 && r.logger != nil {
				r.logger.Info("Dependency reachable after retries",
					logger.String("dependency", name),
					logger.Int("attempt", attempt))
			}
			return nil
		}
		if attempt == r.config.MaxAttempts {
			break
		}

		delay := r.delay(attempt)
		if r.logger != nil {
			r.logger.Warn("Dependency not ready, retrying",
				logger.String("dependency", name),
				logger.Int("attempt", attempt),
				logger.Duration("delay", delay),
				logger.Err(lastErr))
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	return fmt.Errorf("%s: giving up after %d attempts: %w", name, r.config.MaxAttempts, lastErr)
}

func (r *Retrier) delay(attempt int) time.Duration {
	d := float64(r.config.BaseDelay) * math.Pow(r.config.Multiplier, float64(attempt-1))
	if max := float64(r.config.MaxDelay); max > 0 && d > max {
		d = max
	}
	if r.config.Jitter {
		d += d * 0.1 * rand.Float64()
	}
	return time.Duration(d)
}
