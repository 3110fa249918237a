package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/unityride/internal/pkg/middleware"
	"github.com/piresc/unityride/internal/pkg/models"
	"github.com/piresc/unityride/internal/pkg/validator"
	"github.com/piresc/unityride/internal/utils"
	"github.com/piresc/unityride/services/admin"
)

// AdminHandler handles HTTP requests for the moderation panel
type AdminHandler struct {
	adminUC admin.AdminUC
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminUC admin.AdminUC) *AdminHandler {
	return &AdminHandler{adminUC: adminUC}
}

// ListUsers lists users, filtered by the search query parameter
func (h *AdminHandler) ListUsers(c echo.Context) error {
	s, ok := middleware.GetSession(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	list, err := h.adminUC.ListUsers(c.Request().Context(), s, c.QueryParam("search"))
	if err != nil {
		return utils.AppErrorResponse(c, err, "Failed to list users")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Users retrieved successfully", list)
}

// ListPendingVerifications lists drivers awaiting review
func (h *AdminHandler) ListPendingVerifications(c echo.Context) error {
	s, ok := middleware.GetSession(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	list, err := h.adminUC.ListPendingVerifications(c.Request().Context(), s)
	if err != nil {
		return utils.AppErrorResponse(c, err, "Failed to list verifications")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Verifications retrieved successfully", list)
}

// VerifyDriver records an approve or reject decision
func (h *AdminHandler) VerifyDriver(c echo.Context) error {
	s, ok := middleware.GetSession(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id := c.Param("id")
	if err := validator.ValidateID("user id", id); err != nil {
		return utils.AppErrorResponse(c, err, "")
	}

	var req models.VerifyDriverRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.AppErrorResponse(c, err, "Invalid request payload")
	}

	user, err := h.adminUC.VerifyDriver(c.Request().Context(), s, id, *req.Approve)
	if err != nil {
		return utils.AppErrorResponse(c, err, "Failed to update verification")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Verification updated", user)
}

// DeleteUser removes an account
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	s, ok := middleware.GetSession(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id := c.Param("id")
	if err := validator.ValidateID("user id", id); err != nil {
		return utils.AppErrorResponse(c, err, "")
	}

	if err := h.adminUC.DeleteUser(c.Request().Context(), s, id); err != nil {
		return utils.AppErrorResponse(c, err, "Failed to delete user")
	}
	return utils.SuccessResponse(c, http.StatusOK, "User deleted", nil)
}

// DeleteEvent removes an event
func (h *AdminHandler) DeleteEvent(c echo.Context) error {
	s, ok := middleware.GetSession(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id := c.Param("id")
	if err := validator.ValidateID("event id", id); err != nil {
		return utils.AppErrorResponse(c, err, "")
	}

	if err := h.adminUC.DeleteEvent(c.Request().Context(), s, id); err != nil {
		return utils.AppErrorResponse(c, err, "Failed to delete event")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Event deleted", nil)
}

// Overview returns the dashboard counters
func (h *AdminHandler) Overview(c echo.Context) error {
	s, ok := middleware.GetSession(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	overview, err := h.adminUC.Overview(c.Request().Context(), s)
	if err != nil {
		return utils.AppErrorResponse(c, err, "Failed to load overview")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Overview retrieved successfully", overview)
}
