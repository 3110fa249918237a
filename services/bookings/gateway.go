package bookings

import (
	"context"

	"github.com/piresc/unityride/internal/pkg/models"
)

// BookingGW publishes booking workflow events
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/unityride/services/bookings BookingGW
type BookingGW interface {
	PublishBookingEvent(ctx context.Context, subject string, event models.BookingEvent) error
	PublishRideCancelled(ctx context.Context, event models.RideCancelledEvent) error
}
