package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/unityride/services/admin"
	httpHandler "github.com/piresc/unityride/services/admin/handler/http"
)

// Handler wraps the admin HTTP handler
type Handler struct {
	admin *httpHandler.AdminHandler
}

// NewHandler creates the admin handlers
func NewHandler(adminUC admin.AdminUC) *Handler {
	return &Handler{admin: httpHandler.NewAdminHandler(adminUC)}
}

// RegisterRoutes registers moderation routes on g, which must already
// require an ADMIN session
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/users", h.admin.ListUsers)
	g.POST("/users/:id/verify", h.admin.VerifyDriver)
	g.DELETE("/users/:id", h.admin.DeleteUser)
	g.DELETE("/events/:id", h.admin.DeleteEvent)
	g.GET("/verifications", h.admin.ListPendingVerifications)
	g.GET("/overview", h.admin.Overview)
}
