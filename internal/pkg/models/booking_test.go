package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{"pending to approved", BookingStatusPending, BookingStatusApproved, true},
		{"pending to rejected", BookingStatusPending, BookingStatusRejected, true},
		{"pending to pending", BookingStatusPending, BookingStatusPending, false},
		{"approved to rejected", BookingStatusApproved, BookingStatusRejected, true},
		{"approved to pending", BookingStatusApproved, BookingStatusPending, false},
		{"approved to approved", BookingStatusApproved, BookingStatusApproved, false},
		{"rejected is terminal", BookingStatusRejected, BookingStatusApproved, false},
		{"rejected to pending", BookingStatusRejected, BookingStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestRide_HasPassenger(t *testing.T) {
	r := &Ride{Passengers: []string{"a", "b"}}
	assert.True(t, r.HasPassenger("b"))
	assert.False(t, r.HasPassenger("c"))
	assert.False(t, (&Ride{}).HasPassenger("a"))
}
