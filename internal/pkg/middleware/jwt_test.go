package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/unityride/internal/pkg/jwt"
	"github.com/piresc/unityride/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() models.JWTConfig {
	return models.JWTConfig{Secret: "middleware-test-secret", Expiration: 30, Issuer: "test"}
}

func newAuthedEcho(cfg models.JWTConfig, mws ...echo.MiddlewareFunc) *echo.Echo {
	e := echo.New()
	chain := append([]echo.MiddlewareFunc{JWTAuthMiddleware(cfg)}, mws...)
	e.GET("/me", func(c echo.Context) error {
		s, ok := GetSession(c)
		if !ok {
			return c.NoContent(http.StatusTeapot)
		}
		return c.JSON(http.StatusOK, map[string]string{"user_id": s.UserID, "role": string(s.Role)})
	}, chain...)
	return e
}

func TestJWTAuthMiddleware_ValidHeader(t *testing.T) {
	cfg := testJWTConfig()
	userID := uuid.New().String()
	token, _, err := jwtpkg.GenerateToken(userID, "a@b.c", models.RoleDriver, cfg)
	require.NoError(t, err)

	e := newAuthedEcho(cfg)
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, userID, body["user_id"])
	assert.Equal(t, "DRIVER", body["role"])
}

func TestJWTAuthMiddleware_QueryToken(t *testing.T) {
	cfg := testJWTConfig()
	token, _, err := jwtpkg.GenerateToken(uuid.New().String(), "a@b.c", models.RoleRider, cfg)
	require.NoError(t, err)

	e := newAuthedEcho(cfg)
	req := httptest.NewRequest(http.MethodGet, "/me?token="+token, nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJWTAuthMiddleware_Rejects(t *testing.T) {
	cfg := testJWTConfig()
	foreign, _, err := jwtpkg.GenerateToken(uuid.New().String(), "a@b.c", models.RoleRider,
		models.JWTConfig{Secret: "other", Expiration: 30})
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"missing", ""},
		{"malformed", "Bearer not-a-token"},
		{"wrong scheme", "Basic abc"},
		{"foreign signature", "Bearer " + foreign},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newAuthedEcho(cfg)
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, false, body["success"])
		})
	}
}

func TestRequireRole(t *testing.T) {
	cfg := testJWTConfig()

	tests := []struct {
		name string
		role models.Role
		mw   echo.MiddlewareFunc
		want int
	}{
		{"admin allowed", models.RoleAdmin, RequireAdmin(), http.StatusOK},
		{"rider is not admin", models.RoleRider, RequireAdmin(), http.StatusForbidden},
		{"driver-rider can drive", models.RoleDriverRider, RequireDriver(), http.StatusOK},
		{"rider cannot drive", models.RoleRider, RequireDriver(), http.StatusForbidden},
		{"driver cannot ride", models.RoleDriver, RequireRider(), http.StatusForbidden},
		{"not onboarded cannot ride", "", RequireRider(), http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, _, err := jwtpkg.GenerateToken(uuid.New().String(), "a@b.c", tt.role, cfg)
			require.NoError(t, err)

			e := newAuthedEcho(cfg, tt.mw)
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
