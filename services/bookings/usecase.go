package bookings

import (
	"context"

	"github.com/piresc/unityride/internal/pkg/models"
)

// BookingUC defines the booking workflow use case interface
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/unityride/services/bookings BookingUC
type BookingUC interface {
	CreateBookingRequest(ctx context.Context, s models.Session, rideID string) (*models.Booking, error)
	ApproveBooking(ctx context.Context, s models.Session, bookingID string) (*models.Booking, error)
	RejectBooking(ctx context.Context, s models.Session, bookingID string) (*models.Booking, error)
	RemovePassenger(ctx context.Context, s models.Session, bookingID, rideID string) (*models.Booking, error)
	CancelRide(ctx context.Context, s models.Session, rideID string) (*models.CancelRideResult, error)
	ListBookings(ctx context.Context, s models.Session) ([]models.BookingView, error)
	ListRidePassengers(ctx context.Context, s models.Session, rideID string) ([]models.Booking, error)
}
