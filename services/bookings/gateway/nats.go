package gateway

import (
	"context"

	"github.com/piresc/unityride/internal/pkg/constants"
	"github.com/piresc/unityride/internal/pkg/models"
	natspkg "github.com/piresc/unityride/internal/pkg/nats"
	nr "github.com/piresc/unityride/internal/pkg/newrelic"
)

// BookingGW publishes booking workflow events on NATS
type BookingGW struct {
	natsClient *natspkg.Client
}

// NewBookingGW creates a new NATS gateway instance
func NewBookingGW(client *natspkg.Client) *BookingGW {
	return &BookingGW{natsClient: client}
}

// PublishBookingEvent publishes a booking state change on one of the booking.* subjects
func (g *BookingGW) PublishBookingEvent(ctx context.Context, subject string, event models.BookingEvent) error {
	defer nr.StartMessageSegment(ctx, subject)()
	return g.natsClient.PublishJSON(subject, event)
}

// PublishRideCancelled publishes a ride deletion
func (g *BookingGW) PublishRideCancelled(ctx context.Context, event models.RideCancelledEvent) error {
	defer nr.StartMessageSegment(ctx, constants.SubjectRideCancelled)()
	return g.natsClient.PublishJSON(constants.SubjectRideCancelled, event)
}
