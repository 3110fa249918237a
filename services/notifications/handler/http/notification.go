package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/unityride/internal/pkg/middleware"
	"github.com/piresc/unityride/internal/pkg/models"
	"github.com/piresc/unityride/internal/pkg/validator"
	"github.com/piresc/unityride/internal/utils"
	"github.com/piresc/unityride/services/notifications"
)

// ConnectionHandler upgrades an authenticated request into a feed socket
type ConnectionHandler interface {
	HandleConnection(c echo.Context, userID string) error
}

// NotificationHandler handles HTTP requests for notifications
type NotificationHandler struct {
	notificationUC notifications.NotificationUC
	ws             ConnectionHandler
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationUC notifications.NotificationUC, ws ConnectionHandler) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: notificationUC,
		ws:             ws,
	}
}

// List returns the caller's notifications, newest first
func (h *NotificationHandler) List(c echo.Context) error {
	s, ok := middleware.GetSession(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	list, err := h.notificationUC.List(c.Request().Context(), s)
	if err != nil {
		return utils.AppErrorResponse(c, err, "Failed to list notifications")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Notifications retrieved successfully", list)
}

// UnreadCount returns the badge counter
func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	s, ok := middleware.GetSession(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	n, err := h.notificationUC.UnreadCount(c.Request().Context(), s)
	if err != nil {
		return utils.AppErrorResponse(c, err, "Failed to count notifications")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Unread count retrieved successfully", models.UnreadCount{Unread: n})
}

// MarkRead marks one notification as read
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	s, ok := middleware.GetSession(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	id := c.Param("id")
	if err := validator.ValidateID("notification id", id); err != nil {
		return utils.AppErrorResponse(c, err, "")
	}

	if err := h.notificationUC.MarkRead(c.Request().Context(), s, id); err != nil {
		return utils.AppErrorResponse(c, err, "Failed to mark notification read")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Notification marked as read", nil)
}

// MarkAllRead marks every notification of the caller as read
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	s, ok := middleware.GetSession(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	n, err := h.notificationUC.MarkAllRead(c.Request().Context(), s)
	if err != nil {
		return utils.AppErrorResponse(c, err, "Failed to mark notifications read")
	}
	return utils.SuccessResponse(c, http.StatusOK, "All notifications marked as read", map[string]int64{"updated": n})
}

// Stream upgrades to the realtime notification feed
func (h *NotificationHandler) Stream(c echo.Context) error {
	s, ok := middleware.GetSession(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	return h.ws.HandleConnection(c, s.UserID)
}
