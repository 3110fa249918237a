package logger

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger() (*ZapLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return &ZapLogger{Logger: zap.New(core)}, logs
}

func TestNewZapLogger_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "unityride.log")

	zl, err := NewZapLogger(ZapConfig{Level: "debug", FilePath: path, Service: "unityride"}, nil)
	require.NoError(t, err)

	zl.Info("hello", String("k", "v"))
	require.NoError(t, zl.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello"`)
	assert.Contains(t, string(data), `"service":"unityride"`)
}

func TestLogHTTPRequest_Levels(t *testing.T) {
	zl, logs := newObservedLogger()

	zl.LogHTTPRequest(nil, "GET", "/events", "127.0.0.1", "u1", "r1", http.StatusOK, time.Millisecond, nil)
	zl.LogHTTPRequest(nil, "POST", "/rides/:id/bookings", "127.0.0.1", "u1", "r2", http.StatusConflict, time.Millisecond, nil)
	zl.LogHTTPRequest(nil, "POST", "/bookings/:id/approve", "127.0.0.1", "u1", "r3", http.StatusInternalServerError, time.Millisecond, errors.New("boom"))

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, "r3", entries[2].ContextMap()["request_id"])
}

func TestZapEchoMiddleware_LogsUserAndStatus(t *testing.T) {
	zl, logs := newObservedLogger()
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/me")
	c.Set(ContextKeyUserID, "user-1")

	h := ZapEchoMiddleware(zl)(func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "nope")
	})

	require.NoError(t, h(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "user-1", fields["user_id"])
	assert.Equal(t, int64(http.StatusNotFound), fields["status"])
	assert.Equal(t, "/me", fields["path"])
}
