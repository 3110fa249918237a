package users

import (
	"context"

	"github.com/piresc/unityride/internal/pkg/models"
)

// UserUC defines the account and profile business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/unityride/services/users UserUC
type UserUC interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	CompleteOnboarding(ctx context.Context, s models.Session, req models.OnboardingRequest) (*models.AuthResponse, error)
	GetProfile(ctx context.Context, s models.Session) (*models.User, error)
	UpdatePhone(ctx context.Context, s models.Session, req models.UpdatePhoneRequest) (*models.User, error)
	UpdateVehicle(ctx context.Context, s models.Session, req models.UpdateVehicleRequest) (*models.User, error)
	GenerateAvatar(ctx context.Context, s models.Session) (*models.User, error)
	RequestVerification(ctx context.Context, s models.Session) (*models.User, error)
	GetStats(ctx context.Context, s models.Session) (*models.UserStats, error)
	CreateAdmin(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	RequestPasswordReset(ctx context.Context, req models.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error
}
