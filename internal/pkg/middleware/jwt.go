package middleware

import (
	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	jwtpkg "github.com/piresc/unityride/internal/pkg/jwt"
	"github.com/piresc/unityride/internal/pkg/logger"
	"github.com/piresc/unityride/internal/pkg/models"
	"github.com/piresc/unityride/internal/utils"
)

// Context keys set by the auth middleware
const (
	ContextKeySession = "session"
	ContextKeyUserID  = logger.ContextKeyUserID
	ContextKeyRole    = "user_role"
)

// JWTAuthMiddleware validates the bearer token and stores a models.Session on
// the context. Browsers cannot set headers on WebSocket upgrades, so the token
// is also accepted from the "token" query parameter.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(config.Secret),
		TokenLookup: "header:Authorization:Bearer ,query:token",
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(jwtpkg.Claims)
		},
		SuccessHandler: func(c echo.Context) {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return
			}
			if claims, ok := token.Claims.(*jwtpkg.Claims); ok && claims.UserID != "" {
				SetSession(c, claims.Session())
			}
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return utils.UnauthorizedResponse(c, "Invalid or missing token")
		},
	})
}

// SetSession stores s on the context
func SetSession(c echo.Context, s models.Session) {
	c.Set(ContextKeySession, s)
	c.Set(ContextKeyUserID, s.UserID)
	c.Set(ContextKeyRole, string(s.Role))

	if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
		txn.AddAttribute("user.id", s.UserID)
		txn.AddAttribute("user.role", string(s.Role))
	}
}

// GetSession returns the session stored by JWTAuthMiddleware
func GetSession(c echo.Context) (models.Session, bool) {
	s, ok := c.Get(ContextKeySession).(models.Session)
	return s, ok && s.UserID != ""
}
