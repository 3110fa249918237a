package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/unityride/services/events"
	httpHandler "github.com/piresc/unityride/services/events/handler/http"
)

// Handler wraps the event HTTP handler
type Handler struct {
	event *httpHandler.EventHandler
}

// NewHandler creates the event handlers
func NewHandler(eventUC events.EventUC) *Handler {
	return &Handler{event: httpHandler.NewEventHandler(eventUC)}
}

// RegisterRoutes registers the member routes on e and the admin routes on admin
func (h *Handler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc, admin *echo.Group) {
	g := e.Group("/events", auth)
	g.GET("", h.event.ListUpcoming)
	g.GET("/:id", h.event.GetEvent)

	admin.GET("/events", h.event.ListAll)
	admin.POST("/events", h.event.CreateEvent)
}
