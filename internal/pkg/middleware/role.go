package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/unityride/internal/pkg/models"
	"github.com/piresc/unityride/internal/utils"
)

// RequireRole rejects callers whose session role fails allow
func RequireRole(allow func(models.Role) bool, message string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s, ok := GetSession(c)
			if !ok {
				return utils.UnauthorizedResponse(c, "")
			}
			if !allow(s.Role) {
				return utils.ForbiddenResponse(c, message)
			}
			return next(c)
		}
	}
}

// RequireAdmin allows ADMIN sessions only
func RequireAdmin() echo.MiddlewareFunc {
	return RequireRole(models.Role.IsAdmin, "Admin access required")
}

// RequireDriver allows roles that may offer rides
func RequireDriver() echo.MiddlewareFunc {
	return RequireRole(models.Role.CanDrive, "Driver access required")
}

// RequireRider allows roles that may request seats
func RequireRider() echo.MiddlewareFunc {
	return RequireRole(models.Role.CanRide, "Rider access required")
}
