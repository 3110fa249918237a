package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/unityride/internal/pkg/middleware"
	"github.com/piresc/unityride/internal/pkg/models"
	"github.com/piresc/unityride/internal/utils"
	"github.com/piresc/unityride/services/users"
)

// ProfileHandler handles the /me endpoints
type ProfileHandler struct {
	userUC users.UserUC
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(userUC users.UserUC) *ProfileHandler {
	return &ProfileHandler{userUC: userUC}
}

// GetProfile returns the caller's profile
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	s, ok := middleware.GetSession(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	user, err := h.userUC.GetProfile(c.Request().Context(), s)
	if err != nil {
		return utils.AppErrorResponse(c, err, "Failed to retrieve profile")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Profile retrieved successfully", user)
}

// UpdatePhone changes the contact number
func (h *ProfileHandler) UpdatePhone(c echo.Context) error {
	s, ok := middleware.GetSession(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.UpdatePhoneRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.AppErrorResponse(c, err, "Invalid request payload")
	}

	user, err := h.userUC.UpdatePhone(c.Request().Context(), s, req)
	if err != nil {
		return utils.AppErrorResponse(c, err, "Failed to update phone number")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Phone number updated", user)
}

// UpdateVehicle changes the car details
func (h *ProfileHandler) UpdateVehicle(c echo.Context) error {
	s, ok := middleware.GetSession(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.UpdateVehicleRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.AppErrorResponse(c, err, "Invalid request payload")
	}

	user, err := h.userUC.UpdateVehicle(c.Request().Context(), s, req)
	if err != nil {
		return utils.AppErrorResponse(c, err, "Failed to update vehicle")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Vehicle updated", user)
}

// GenerateAvatar assigns a generated avatar
func (h *ProfileHandler) GenerateAvatar(c echo.Context) error {
	s, ok := middleware.GetSession(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	user, err := h.userUC.GenerateAvatar(c.Request().Context(), s)
	if err != nil {
		return utils.AppErrorResponse(c, err, "Failed to generate avatar")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Avatar generated", user)
}

// RequestVerification submits the driver verification request
func (h *ProfileHandler) RequestVerification(c echo.Context) error {
	s, ok := middleware.GetSession(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	user, err := h.userUC.RequestVerification(c.Request().Context(), s)
	if err != nil {
		return utils.AppErrorResponse(c, err, "Failed to request verification")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Verification requested", user)
}

// GetStats returns the activity counters for the profile page
func (h *ProfileHandler) GetStats(c echo.Context) error {
	s, ok := middleware.GetSession(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	stats, err := h.userUC.GetStats(c.Request().Context(), s)
	if err != nil {
		return utils.AppErrorResponse(c, err, "Failed to retrieve stats")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Stats retrieved successfully", stats)
}
