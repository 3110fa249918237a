package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/unityride/internal/pkg/middleware"
	"github.com/piresc/unityride/internal/pkg/models"
	"github.com/piresc/unityride/internal/pkg/validator"
	"github.com/piresc/unityride/internal/utils"
	"github.com/piresc/unityride/services/events"
)

// EventHandler handles HTTP requests for events
type EventHandler struct {
	eventUC events.EventUC
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventUC events.EventUC) *EventHandler {
	return &EventHandler{eventUC: eventUC}
}

// ListUpcoming lists the upcoming events
func (h *EventHandler) ListUpcoming(c echo.Context) error {
	list, err := h.eventUC.ListUpcoming(c.Request().Context())
	if err != nil {
		return utils.AppErrorResponse(c, err, "Failed to list events")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Events retrieved successfully", list)
}

// GetEvent returns one event
func (h *EventHandler) GetEvent(c echo.Context) error {
	id := c.Param("id")
	if err := validator.ValidateID("event id", id); err != nil {
		return utils.AppErrorResponse(c, err, "")
	}

	event, err := h.eventUC.GetEvent(c.Request().Context(), id)
	if err != nil {
		return utils.AppErrorResponse(c, err, "Failed to retrieve event")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Event retrieved successfully", event)
}

// ListAll lists every event for admins
func (h *EventHandler) ListAll(c echo.Context) error {
	s, ok := middleware.GetSession(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	list, err := h.eventUC.ListAll(c.Request().Context(), s)
	if err != nil {
		return utils.AppErrorResponse(c, err, "Failed to list events")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Events retrieved successfully", list)
}

// CreateEvent publishes a new event
func (h *EventHandler) CreateEvent(c echo.Context) error {
	s, ok := middleware.GetSession(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.AppErrorResponse(c, err, "Invalid request payload")
	}

	event, err := h.eventUC.CreateEvent(c.Request().Context(), s, req)
	if err != nil {
		return utils.AppErrorResponse(c, err, "Failed to create event")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Event created successfully", event)
}
