package handler

import (
	"github.com/labstack/echo/v4"
	natspkg "github.com/piresc/unityride/internal/pkg/nats"
	"github.com/piresc/unityride/internal/pkg/websocket"
	"github.com/piresc/unityride/services/notifications"
	httpHandler "github.com/piresc/unityride/services/notifications/handler/http"
	natsHandler "github.com/piresc/unityride/services/notifications/handler/nats"
)

// Handler combines the HTTP, WebSocket and NATS handlers of the notification service
type Handler struct {
	notificationHTTP *httpHandler.NotificationHandler
	feedNATS         *natsHandler.FeedHandler
}

// NewHandler creates a new combined handler
func NewHandler(
	notificationUC notifications.NotificationUC,
	natsClient *natspkg.Client,
	wsManager *websocket.Manager,
) *Handler {
	return &Handler{
		notificationHTTP: httpHandler.NewNotificationHandler(notificationUC, wsManager),
		feedNATS:         natsHandler.NewFeedHandler(natsClient, wsManager),
	}
}

// RegisterRoutes registers the notification routes behind auth
func (h *Handler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	g := e.Group("/notifications", auth)
	g.GET("", h.notificationHTTP.List)
	g.GET("/unread-count", h.notificationHTTP.UnreadCount)
	g.POST("/read-all", h.notificationHTTP.MarkAllRead)
	g.POST("/:id/read", h.notificationHTTP.MarkRead)

	e.GET("/ws/notifications", h.notificationHTTP.Stream, auth)
}

// InitNATSConsumers starts the realtime feed relay
func (h *Handler) InitNATSConsumers() error {
	return h.feedNATS.InitNATSConsumers()
}

// Close stops the realtime feed relay
func (h *Handler) Close() {
	h.feedNATS.Close()
}
