package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/unityride/internal/pkg/middleware"
	"github.com/piresc/unityride/services/rides"
	httpHandler "github.com/piresc/unityride/services/rides/handler/http"
)

// Handler wraps the ride HTTP handler
type Handler struct {
	ride *httpHandler.RideHandler
}

// NewHandler creates the ride handlers
func NewHandler(rideUC rides.RideUC) *Handler {
	return &Handler{ride: httpHandler.NewRideHandler(rideUC)}
}

// RegisterRoutes registers ride listing routes
func (h *Handler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.GET("/events/:id/rides", h.ride.ListOpenRides, auth)
	e.POST("/events/:id/rides", h.ride.OfferRide, auth, middleware.RequireDriver())

	g := e.Group("/rides", auth)
	g.GET("/mine", h.ride.ListMyRides, middleware.RequireDriver())
	g.GET("/:id", h.ride.GetRide)
	g.POST("/:id/close", h.ride.CloseRide, middleware.RequireDriver())
}
