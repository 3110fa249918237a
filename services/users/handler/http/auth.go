package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/unityride/internal/pkg/logger"
	"github.com/piresc/unityride/internal/pkg/middleware"
	"github.com/piresc/unityride/internal/pkg/models"
	"github.com/piresc/unityride/internal/utils"
	"github.com/piresc/unityride/services/users"
)

// AuthHandler handles registration, login and onboarding
type AuthHandler struct {
	userUC users.UserUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userUC users.UserUC) *AuthHandler {
	return &AuthHandler{userUC: userUC}
}

// Register creates an account and returns a token
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for registration", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.AppErrorResponse(c, err, "Invalid request payload")
	}

	resp, err := h.userUC.Register(c.Request().Context(), req)
	if err != nil {
		return utils.AppErrorResponse(c, err, "Failed to register")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Registration successful", resp)
}

// Login authenticates an account and returns a token
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.AppErrorResponse(c, err, "Invalid request payload")
	}

	resp, err := h.userUC.Login(c.Request().Context(), req)
	if err != nil {
		return utils.AppErrorResponse(c, err, "Failed to login")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// CompleteOnboarding stores the chosen role and returns a refreshed token
func (h *AuthHandler) CompleteOnboarding(c echo.Context) error {
	s, ok := middleware.GetSession(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.OnboardingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.AppErrorResponse(c, err, "Invalid request payload")
	}

	resp, err := h.userUC.CompleteOnboarding(c.Request().Context(), s, req)
	if err != nil {
		return utils.AppErrorResponse(c, err, "Failed to complete onboarding")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Onboarding completed", resp)
}

// ForgotPassword starts a password reset. The answer is the same whether or
// not the email belongs to an account.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req models.ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.AppErrorResponse(c, err, "Invalid request payload")
	}

	if err := h.userUC.RequestPasswordReset(c.Request().Context(), req); err != nil {
		return utils.AppErrorResponse(c, err, "Failed to request password reset")
	}
	return utils.SuccessResponse(c, http.StatusAccepted,
		"If the email is registered, a reset link has been sent", nil)
}

// ResetPassword redeems a reset token
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req models.ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.AppErrorResponse(c, err, "Invalid request payload")
	}

	if err := h.userUC.ResetPassword(c.Request().Context(), req); err != nil {
		return utils.AppErrorResponse(c, err, "Failed to reset password")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Password updated", nil)
}
