package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/unityride/internal/pkg/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSuccessResponse(t *testing.T) {
	c, rec := newContext()

	err := SuccessResponse(c, http.StatusCreated, "Ride offered", map[string]string{"id": "r1"})

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Ride offered", body["message"])
	assert.Equal(t, "r1", body["data"].(map[string]interface{})["id"])
}

func TestErrorHelpers(t *testing.T) {
	tests := []struct {
		name    string
		call    func(echo.Context) error
		code    int
		message string
	}{
		{"bad request", func(c echo.Context) error { return BadRequestResponse(c, "Invalid request payload") }, http.StatusBadRequest, "Invalid request payload"},
		{"unauthorized default", func(c echo.Context) error { return UnauthorizedResponse(c, "") }, http.StatusUnauthorized, "Unauthorized"},
		{"forbidden default", func(c echo.Context) error { return ForbiddenResponse(c, "") }, http.StatusForbidden, "Forbidden"},
		{"not found default", func(c echo.Context) error { return NotFoundResponse(c, "") }, http.StatusNotFound, "Resource not found"},
		{"too many", TooManyRequestsResponse, http.StatusTooManyRequests, "Rate limit exceeded"},
		{"internal default", func(c echo.Context) error { return InternalServerErrorResponse(c, "") }, http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()

			require.NoError(t, tt.call(c))

			assert.Equal(t, tt.code, rec.Code)
			body := decode(t, rec)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.message, body["error"])
			assert.Equal(t, float64(tt.code), body["code"])
		})
	}
}

func TestAppErrorResponse(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"validation", fmt.Errorf("approve: %w", apperr.ErrNoSeatsAvailable), http.StatusBadRequest, "no seats available"},
		{"conflict", apperr.ErrDuplicateBooking, http.StatusConflict, "you already requested this ride"},
		{"not found", apperr.NotFound("booking"), http.StatusNotFound, "booking not found"},
		{"internal hides details", errors.New("pq: relation does not exist"), http.StatusInternalServerError, "Failed to approve booking"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()

			require.NoError(t, AppErrorResponse(c, tt.err, "Failed to approve booking"))

			assert.Equal(t, tt.code, rec.Code)
			body := decode(t, rec)
			assert.Equal(t, tt.message, body["error"])
		})
	}
}
