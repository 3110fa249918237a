package admin

import (
	"context"

	"github.com/piresc/unityride/internal/pkg/models"
)

// Countable entities for the overview dashboard
const (
	EntityUsers                = "users"
	EntityEvents               = "events"
	EntityRides                = "rides"
	EntityBookings             = "bookings"
	EntityPendingVerifications = "pending_verifications"
)

// AdminRepo defines the moderation repository interface
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/unityride/services/admin AdminRepo,Notifier
type AdminRepo interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	ListUsers(ctx context.Context, search string) ([]models.User, error)
	ListPendingVerifications(ctx context.Context) ([]models.User, error)
	SetDriverVerification(ctx context.Context, id string, approve bool) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error
	DeleteEvent(ctx context.Context, id string) error
	CountEntities(ctx context.Context, entity string) (int, error)
}

// Notifier delivers in-app notifications. Delivery is best-effort.
type Notifier interface {
	Send(ctx context.Context, userID, title, message string, typ models.NotificationType, link string)
}
