package logger

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// ContextKeyUserID is where the auth middleware stores the caller id
const ContextKeyUserID = "user_id"

// ZapEchoMiddleware logs every request with its latency and outcome
func ZapEchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			txn := newrelic.FromContext(c.Request().Context())
			start := time.Now()

			err := next(c)
			if err != nil {
				// let echo write the response so the status below is accurate
				c.Error(err)
			}

			latency := time.Since(start)
			userID := "anonymous"
			if v, ok := c.Get(ContextKeyUserID).(string); ok && v != "" {
				userID = v
			}
			requestID := c.Response().Header().Get(echo.HeaderXRequestID)

			if txn != nil {
				txn.AddAttribute("user_id", userID)
				txn.AddAttribute("request_id", requestID)
				if err != nil {
					txn.NoticeError(err)
				}
			}

			logger.LogHTTPRequest(txn, c.Request().Method, c.Path(), c.RealIP(), userID, requestID,
				c.Response().Status, latency, err)

			return nil
		}
	}
}
