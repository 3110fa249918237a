package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/unityride/internal/pkg/observability"
)

// MetricsMiddleware records request counts and latency per route
func MetricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			method := c.Request().Method
			status := strconv.Itoa(c.Response().Status)

			observability.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
			observability.HTTPRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
			return nil
		}
	}
}
