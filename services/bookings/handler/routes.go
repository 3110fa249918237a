package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/unityride/internal/pkg/middleware"
	"github.com/piresc/unityride/services/bookings"
	httpHandler "github.com/piresc/unityride/services/bookings/handler/http"
)

// Handler wraps the booking HTTP handler
type Handler struct {
	booking *httpHandler.BookingHandler
}

// NewHandler creates the booking handlers
func NewHandler(bookingUC bookings.BookingUC) *Handler {
	return &Handler{booking: httpHandler.NewBookingHandler(bookingUC)}
}

// RegisterRoutes registers the booking workflow routes. requestLimit guards
// seat requests.
func (h *Handler) RegisterRoutes(e *echo.Echo, auth, requestLimit echo.MiddlewareFunc) {
	driver := middleware.RequireDriver()

	r := e.Group("/rides", auth)
	r.POST("/:id/bookings", h.booking.CreateBookingRequest, middleware.RequireRider(), requestLimit)
	r.POST("/:id/bookings/:bookingId/remove", h.booking.RemovePassenger, driver)
	r.GET("/:id/passengers", h.booking.ListRidePassengers)
	r.DELETE("/:id", h.booking.CancelRide)

	b := e.Group("/bookings", auth)
	b.GET("", h.booking.ListBookings)
	b.POST("/:id/approve", h.booking.ApproveBooking, driver)
	b.POST("/:id/reject", h.booking.RejectBooking, driver)
}
