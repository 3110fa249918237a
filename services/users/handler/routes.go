package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/unityride/services/users"
	httpHandler "github.com/piresc/unityride/services/users/handler/http"
)

// Handler groups the account handlers
type Handler struct {
	auth    *httpHandler.AuthHandler
	profile *httpHandler.ProfileHandler
}

// NewHandler creates the account handlers
func NewHandler(userUC users.UserUC) *Handler {
	return &Handler{
		auth:    httpHandler.NewAuthHandler(userUC),
		profile: httpHandler.NewProfileHandler(userUC),
	}
}

// RegisterRoutes registers the public auth routes and the authenticated
// profile routes. loginLimit throttles credential guessing.
func (h *Handler) RegisterRoutes(e *echo.Echo, auth, loginLimit echo.MiddlewareFunc) {
	authGroup := e.Group("/auth", loginLimit)
	authGroup.POST("/register", h.auth.Register)
	authGroup.POST("/login", h.auth.Login)
	authGroup.POST("/password/forgot", h.auth.ForgotPassword)
	authGroup.POST("/password/reset", h.auth.ResetPassword)

	e.POST("/onboarding", h.auth.CompleteOnboarding, auth)

	me := e.Group("/me", auth)
	me.GET("", h.profile.GetProfile)
	me.PATCH("/phone", h.profile.UpdatePhone)
	me.PATCH("/vehicle", h.profile.UpdateVehicle)
	me.POST("/avatar", h.profile.GenerateAvatar)
	me.POST("/verification", h.profile.RequestVerification)
	me.GET("/stats", h.profile.GetStats)
}
