package models

import "time"

// BookingStatus represents the status of a seat request
type BookingStatus string

const (
	BookingStatusPending  BookingStatus = "PENDING"
	BookingStatusApproved BookingStatus = "APPROVED"
	BookingStatusRejected BookingStatus = "REJECTED"
)

// CanTransitionTo reports whether the booking state machine allows s -> next.
// PENDING may become APPROVED or REJECTED; APPROVED may only become REJECTED
// (passenger removal); REJECTED is terminal.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch s {
	case BookingStatusPending:
		return next == BookingStatusApproved || next == BookingStatusRejected
	case BookingStatusApproved:
		return next == BookingStatusRejected
	case BookingStatusRejected:
		return false
	}
	return false
}

// Booking is a rider's request for a seat on a ride
type Booking struct {
	ID        string        `json:"id" db:"id"`
	RideID    string        `json:"ride_id" db:"ride_id"`
	EventID   string        `json:"event_id" db:"event_id"`
	DriverID  string        `json:"driver_id" db:"driver_id"`
	RiderID   string        `json:"rider_id" db:"rider_id"`
	RiderName string        `json:"rider_name" db:"rider_name"`
	Status    BookingStatus `json:"status" db:"status"`
	CreatedAt time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" db:"updated_at"`
}

// BookingView is a booking joined with a summary of its ride. Ride is nil
// when the ride has been cancelled.
type BookingView struct {
	Booking
	Ride *RideSummary `json:"ride,omitempty"`
}

// CancelRideResult reports what a ride cancellation left behind
type CancelRideResult struct {
	RideID           string   `json:"ride_id"`
	OrphanedBookings int      `json:"orphaned_bookings"`
	NotifiedRiders   []string `json:"notified_riders"`
}
