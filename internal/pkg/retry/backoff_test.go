package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig(attempts int) Config {
	return Config{MaxAttempts: attempts, BaseDelay: time.Millisecond, MaxDelay: 2 * time.Millisecond, Multiplier: 2}
}

func TestDo_SucceedsAfterFailures(t *testing.T) {
	// Arrange
	calls := 0
	r := New(fastConfig(5), nil)

	// Act
	err := r.Do(context.Background(), "postgres", func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("connection refused")
		}
		return nil
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDo_GivesUp(t *testing.T) {
	// Arrange
	boom := errors.New("connection refused")
	calls := 0
	r := New(fastConfig(3), nil)

	// Act
	err := r.Do(context.Background(), "nats", func(context.Context) error {
		calls++
		return boom
	})

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "nats")
	assert.Equal(t, 3, calls)
}

func TestDo_StopsOnCancelledContext(t *testing.T) {
	// Arrange
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := New(fastConfig(3), nil)

	// Act
	err := r.Do(ctx, "redis", func(context.Context) error {
		t.Fatal("operation must not run")
		return nil
	})

	// Assert
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDelay_CappedAtMax(t *testing.T) {
	r := New(Config{MaxAttempts: 10, BaseDelay: time.Second, MaxDelay: 3 * time.Second, Multiplier: 2}, nil)

	assert.Equal(t, time.Second, r.delay(1))
	assert.Equal(t, 2*time.Second, r.delay(2))
	assert.Equal(t, 3*time.Second, r.delay(3))
	assert.Equal(t, 3*time.Second, r.delay(8))
}
