package admin

import (
	"context"

	"github.com/piresc/unityride/internal/pkg/models"
)

// AdminUC defines the moderation use case interface
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/unityride/services/admin AdminUC
type AdminUC interface {
	ListUsers(ctx context.Context, s models.Session, search string) ([]models.User, error)
	ListPendingVerifications(ctx context.Context, s models.Session) ([]models.User, error)
	VerifyDriver(ctx context.Context, s models.Session, userID string, approve bool) (*models.User, error)
	DeleteUser(ctx context.Context, s models.Session, userID string) error
	DeleteEvent(ctx context.Context, s models.Session, eventID string) error
	Overview(ctx context.Context, s models.Session) (*models.AdminOverview, error)
}
