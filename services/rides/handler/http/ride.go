package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/unityride/internal/pkg/middleware"
	"github.com/piresc/unityride/internal/pkg/models"
	"github.com/piresc/unityride/internal/pkg/validator"
	"github.com/piresc/unityride/internal/utils"
	"github.com/piresc/unityride/services/rides"
)

// RideHandler handles HTTP requests for ride listings
type RideHandler struct {
	rideUC rides.RideUC
}

// NewRideHandler creates a new ride handler
func NewRideHandler(rideUC rides.RideUC) *RideHandler {
	return &RideHandler{rideUC: rideUC}
}

// OfferRide handles a driver offering seats to an event
func (h *RideHandler) OfferRide(c echo.Context) error {
	s, ok := middleware.GetSession(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	eventID := c.Param("id")
	if err := validator.ValidateID("event id", eventID); err != nil {
		return utils.AppErrorResponse(c, err, "")
	}

	var req models.OfferRideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.AppErrorResponse(c, err, "Invalid request payload")
	}

	ride, err := h.rideUC.OfferRide(c.Request().Context(), s, eventID, req)
	if err != nil {
		return utils.AppErrorResponse(c, err, "Failed to offer ride")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Ride offered successfully", ride)
}

// ListOpenRides lists the bookable rides of an event
func (h *RideHandler) ListOpenRides(c echo.Context) error {
	eventID := c.Param("id")
	if err := validator.ValidateID("event id", eventID); err != nil {
		return utils.AppErrorResponse(c, err, "")
	}

	list, err := h.rideUC.ListOpenRides(c.Request().Context(), eventID)
	if err != nil {
		return utils.AppErrorResponse(c, err, "Failed to list rides")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Rides retrieved successfully", list)
}

// GetRide returns one ride
func (h *RideHandler) GetRide(c echo.Context) error {
	id := c.Param("id")
	if err := validator.ValidateID("ride id", id); err != nil {
		return utils.AppErrorResponse(c, err, "")
	}

	ride, err := h.rideUC.GetRide(c.Request().Context(), id)
	if err != nil {
		return utils.AppErrorResponse(c, err, "Failed to retrieve ride")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride retrieved successfully", ride)
}

// ListMyRides lists the caller's ride offers
func (h *RideHandler) ListMyRides(c echo.Context) error {
	s, ok := middleware.GetSession(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	list, err := h.rideUC.ListMyRides(c.Request().Context(), s)
	if err != nil {
		return utils.AppErrorResponse(c, err, "Failed to list rides")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Rides retrieved successfully", list)
}

// CloseRide stops a ride from taking new requests
func (h *RideHandler) CloseRide(c echo.Context) error {
	s, ok := middleware.GetSession(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id := c.Param("id")
	if err := validator.ValidateID("ride id", id); err != nil {
		return utils.AppErrorResponse(c, err, "")
	}

	ride, err := h.rideUC.CloseRide(c.Request().Context(), s, id)
	if err != nil {
		return utils.AppErrorResponse(c, err, "Failed to close ride")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride closed successfully", ride)
}
