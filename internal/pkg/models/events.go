package models

import (
	"encoding/json"
	"time"
)

// BookingEvent is published on the booking.* subjects
type BookingEvent struct {
	BookingID  string        `json:"booking_id"`
	RideID     string        `json:"ride_id"`
	EventID    string        `json:"event_id"`
	DriverID   string        `json:"driver_id"`
	RiderID    string        `json:"rider_id"`
	Status     BookingStatus `json:"status"`
	SeatsLeft  int           `json:"seats_left"`
	OccurredAt time.Time     `json:"occurred_at"`
}

// RideCancelledEvent is published when a driver deletes a ride
type RideCancelledEvent struct {
	RideID           string    `json:"ride_id"`
	EventID          string    `json:"event_id"`
	DriverID         string    `json:"driver_id"`
	OrphanedBookings int       `json:"orphaned_bookings"`
	CancelledBy      string    `json:"cancelled_by"`
	OccurredAt       time.Time `json:"occurred_at"`
}

// PasswordResetEvent carries a one-time reset token to the mailer. The token
// is never stored in clear.
type PasswordResetEvent struct {
	UserID      string    `json:"user_id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Token       string    `json:"token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// WSMessage is the envelope written to WebSocket clients
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}
