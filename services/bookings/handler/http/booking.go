package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/unityride/internal/pkg/middleware"
	"github.com/piresc/unityride/internal/pkg/models"
	"github.com/piresc/unityride/internal/pkg/validator"
	"github.com/piresc/unityride/internal/utils"
	"github.com/piresc/unityride/services/bookings"
)

// BookingHandler handles HTTP requests for the booking workflow
type BookingHandler struct {
	bookingUC bookings.BookingUC
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingUC bookings.BookingUC) *BookingHandler {
	return &BookingHandler{bookingUC: bookingUC}
}

// CreateBookingRequest handles a rider asking for a seat
func (h *BookingHandler) CreateBookingRequest(c echo.Context) error {
	return h.withID(c, "id", "ride id", func(s models.Session, rideID string) error {
		booking, err := h.bookingUC.CreateBookingRequest(c.Request().Context(), s, rideID)
		if err != nil {
			return utils.AppErrorResponse(c, err, "Failed to request ride")
		}
		return utils.SuccessResponse(c, http.StatusCreated, "Ride requested successfully", booking)
	})
}

// ApproveBooking handles the driver accepting a request
func (h *BookingHandler) ApproveBooking(c echo.Context) error {
	return h.withID(c, "id", "booking id", func(s models.Session, bookingID string) error {
		booking, err := h.bookingUC.ApproveBooking(c.Request().Context(), s, bookingID)
		if err != nil {
			return utils.AppErrorResponse(c, err, "Failed to approve booking")
		}
		return utils.SuccessResponse(c, http.StatusOK, "Booking approved", booking)
	})
}

// RejectBooking handles the driver declining a request
func (h *BookingHandler) RejectBooking(c echo.Context) error {
	return h.withID(c, "id", "booking id", func(s models.Session, bookingID string) error {
		booking, err := h.bookingUC.RejectBooking(c.Request().Context(), s, bookingID)
		if err != nil {
			return utils.AppErrorResponse(c, err, "Failed to reject booking")
		}
		return utils.SuccessResponse(c, http.StatusOK, "Booking rejected", booking)
	})
}

// RemovePassenger handles the driver dropping an approved rider
func (h *BookingHandler) RemovePassenger(c echo.Context) error {
	return h.withID(c, "id", "ride id", func(s models.Session, rideID string) error {
		bookingID := c.Param("bookingId")
		if err := validator.ValidateID("booking id", bookingID); err != nil {
			return utils.AppErrorResponse(c, err, "")
		}

		booking, err := h.bookingUC.RemovePassenger(c.Request().Context(), s, bookingID, rideID)
		if err != nil {
			return utils.AppErrorResponse(c, err, "Failed to remove passenger")
		}
		return utils.SuccessResponse(c, http.StatusOK, "Passenger removed", booking)
	})
}

// CancelRide handles a driver deleting their ride
func (h *BookingHandler) CancelRide(c echo.Context) error {
	return h.withID(c, "id", "ride id", func(s models.Session, rideID string) error {
		result, err := h.bookingUC.CancelRide(c.Request().Context(), s, rideID)
		if err != nil {
			return utils.AppErrorResponse(c, err, "Failed to cancel ride")
		}
		return utils.SuccessResponse(c, http.StatusOK, "Ride cancelled", result)
	})
}

// ListRidePassengers lists the approved riders of a ride
func (h *BookingHandler) ListRidePassengers(c echo.Context) error {
	return h.withID(c, "id", "ride id", func(s models.Session, rideID string) error {
		list, err := h.bookingUC.ListRidePassengers(c.Request().Context(), s, rideID)
		if err != nil {
			return utils.AppErrorResponse(c, err, "Failed to list passengers")
		}
		return utils.SuccessResponse(c, http.StatusOK, "Passengers retrieved successfully", list)
	})
}

// ListBookings lists the caller's bookings
func (h *BookingHandler) ListBookings(c echo.Context) error {
	s, ok := middleware.GetSession(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	list, err := h.bookingUC.ListBookings(c.Request().Context(), s)
	if err != nil {
		return utils.AppErrorResponse(c, err, "Failed to list bookings")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Bookings retrieved successfully", list)
}

// withID resolves the session and validates the named path parameter
func (h *BookingHandler) withID(c echo.Context, param, name string, fn func(models.Session, string) error) error {
	s, ok := middleware.GetSession(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id := c.Param(param)
	if err := validator.ValidateID(name, id); err != nil {
		return utils.AppErrorResponse(c, err, "")
	}
	return fn(s, id)
}
