package bookings

import (
	"context"

	"github.com/piresc/unityride/internal/pkg/models"
)

// BookingRepo defines the booking repository interface. The approve,
// remove and delete operations each run in a single transaction.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/unityride/services/bookings BookingRepo,RideReader,UserReader,EventReader,Notifier
type BookingRepo interface {
	CreateBooking(ctx context.Context, booking *models.Booking) error
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	ApproveBooking(ctx context.Context, bookingID string) (*models.Ride, error)
	RejectBooking(ctx context.Context, bookingID string) error
	RemovePassenger(ctx context.Context, bookingID, rideID string) (*models.Ride, error)
	DeleteRide(ctx context.Context, rideID string) ([]models.Booking, error)
	ListBookingsByRider(ctx context.Context, riderID string) ([]models.BookingView, error)
	ListBookingsByDriver(ctx context.Context, driverID string) ([]models.BookingView, error)
	ListApprovedByRide(ctx context.Context, rideID string) ([]models.Booking, error)
}

// RideReader loads the ride a booking targets
type RideReader interface {
	GetRide(ctx context.Context, id string) (*models.Ride, error)
}

// UserReader loads the requesting rider's profile
type UserReader interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// EventReader loads the event a ride belongs to
type EventReader interface {
	GetEvent(ctx context.Context, id string) (*models.Event, error)
}

// Notifier delivers in-app notifications. Delivery is best-effort.
type Notifier interface {
	Send(ctx context.Context, userID, title, message string, typ models.NotificationType, link string)
}
