package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/unityride/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPanicRecoveryWithZapMiddleware_RecoversPanic(t *testing.T) {
	// Arrange
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/bookings/x/approve", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-1")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ContextKeyUserID, "driver-1")

	h := PanicRecoveryWithZapMiddleware(logger.NewNopLogger())(func(c echo.Context) error {
		panic("nil map write")
	})

	// Act
	err := h(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Internal server error", body["error"])
	assert.Equal(t, "req-1", body["request_id"])
}

func TestPanicRecoveryWithZapMiddleware_PassesThrough(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	h := PanicRecoveryWithZapMiddleware(logger.NewNopLogger())(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	assert.NoError(t, h(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestPanicRecoveryWithZapMiddleware_ResponseAlreadyCommitted(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	h := PanicRecoveryWithZapMiddleware(logger.NewNopLogger())(func(c echo.Context) error {
		_ = c.String(http.StatusAccepted, "partial")
		panic(assert.AnError)
	})

	assert.NoError(t, h(c))
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "partial", rec.Body.String())
}
