package rides

import (
	"context"

	"github.com/piresc/unityride/internal/pkg/models"
)

// RideRepo defines the ride repository interface
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/unityride/services/rides RideRepo,UserReader,EventReader
type RideRepo interface {
	CreateRide(ctx context.Context, ride *models.Ride) error
	GetRide(ctx context.Context, id string) (*models.Ride, error)
	ListOpenRidesByEvent(ctx context.Context, eventID string) ([]models.Ride, error)
	ListRidesByDriver(ctx context.Context, driverID string) ([]models.Ride, error)
	UpdateRideStatus(ctx context.Context, id string, status models.RideStatus) error
}

// UserReader loads the driver's profile
type UserReader interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// EventReader loads the event a ride is offered to
type EventReader interface {
	GetEvent(ctx context.Context, id string) (*models.Event, error)
}
