package rides

import (
	"context"

	"github.com/piresc/unityride/internal/pkg/models"
)

// RideUC defines the ride use case interface
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/unityride/services/rides RideUC
type RideUC interface {
	OfferRide(ctx context.Context, s models.Session, eventID string, req models.OfferRideRequest) (*models.Ride, error)
	ListOpenRides(ctx context.Context, eventID string) ([]models.Ride, error)
	GetRide(ctx context.Context, id string) (*models.Ride, error)
	ListMyRides(ctx context.Context, s models.Session) ([]models.Ride, error)
	CloseRide(ctx context.Context, s models.Session, rideID string) (*models.Ride, error)
}
