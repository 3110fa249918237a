package models

import (
	"time"

	"github.com/lib/pq"
)

// RideStatus represents the status of a ride listing
type RideStatus string

const (
	RideStatusOpen   RideStatus = "OPEN"
	RideStatusClosed RideStatus = "CLOSED"
)

// DefaultCarModel is used when neither the request nor the profile names a car
const DefaultCarModel = "Standard Car"

// Ride is a driver's offer of seats to an event
type Ride struct {
	ID             string         `json:"id" db:"id"`
	EventID        string         `json:"event_id" db:"event_id"`
	DriverID       string         `json:"driver_id" db:"driver_id"`
	DriverName     string         `json:"driver_name" db:"driver_name"`
	CarModel       string         `json:"car_model" db:"car_model"`
	PlateNumber    string         `json:"plate_number" db:"plate_number"`
	PickupLocation string         `json:"pickup_location" db:"pickup_location"`
	PickupTime     time.Time      `json:"pickup_time" db:"pickup_time"`
	SeatsAvailable int            `json:"seats_available" db:"seats_available"`
	TotalSeats     int            `json:"total_seats" db:"total_seats"`
	Price          float64        `json:"price" db:"price"`
	Passengers     pq.StringArray `json:"passengers" db:"passengers"`
	Status         RideStatus     `json:"status" db:"status"`
	CreatedAt      time.Time      `json:"created_at" db:"created_at"`
}

// IsFree reports whether the ride costs nothing
func (r *Ride) IsFree() bool {
	return r.Price == 0
}

// HasPassenger reports whether riderID already holds a seat
func (r *Ride) HasPassenger(riderID string) bool {
	for _, p := range r.Passengers {
		if p == riderID {
			return true
		}
	}
	return false
}

// OfferRideRequest is the payload a driver submits to offer seats
type OfferRideRequest struct {
	PickupLocation string    `json:"pickup_location" validate:"required,max=200"`
	PickupTime     time.Time `json:"pickup_time" validate:"required"`
	Seats          int       `json:"seats" validate:"required,min=1,max=8"`
	Price          float64   `json:"price" validate:"gte=0"`
	IsFree         bool      `json:"is_free"`
	CarModel       string    `json:"car_model" validate:"max=80"`
	PlateNumber    string    `json:"plate_number" validate:"max=20"`
}

// RideSummary is the slice of a ride shown next to a booking
type RideSummary struct {
	DriverName     string    `json:"driver_name" db:"driver_name"`
	CarModel       string    `json:"car_model" db:"car_model"`
	PickupLocation string    `json:"pickup_location" db:"pickup_location"`
	PickupTime     time.Time `json:"pickup_time" db:"pickup_time"`
	Price          float64   `json:"price" db:"price"`
}
