package users

import (
	"context"

	"github.com/piresc/unityride/internal/pkg/models"
)

// UserGW publishes account events
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/unityride/services/users UserGW
type UserGW interface {
	PublishPasswordReset(ctx context.Context, event models.PasswordResetEvent) error
}
