package users

import (
	"context"
	"time"

	"github.com/piresc/unityride/internal/pkg/models"
)

// UserRepo defines the user repository interface
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/unityride/services/users UserRepo,ResetTokenStore
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CompleteOnboarding(ctx context.Context, user *models.User) error
	UpdatePhone(ctx context.Context, id, phone string) error
	UpdateVehicle(ctx context.Context, id, carModel, plateNumber string) error
	UpdatePhotoURL(ctx context.Context, id, photoURL string) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	SetVerificationStatus(ctx context.Context, id string, status models.VerificationStatus) error
	CountRidesOffered(ctx context.Context, driverID string) (int, error)
	CountBookingsMade(ctx context.Context, riderID string) (int, error)
}

// ResetTokenStore keeps hashed password reset tokens until they are redeemed
// or expire
type ResetTokenStore interface {
	Save(ctx context.Context, tokenHash, userID string, ttl time.Duration) error
	Consume(ctx context.Context, tokenHash string) (string, error)
}
