package usecase

import "github.com/piresc/unityride/services/rides"

// RideUC implements the ride use case interface
type RideUC struct {
	rideRepo rides.RideRepo
	users    rides.UserReader
	events   rides.EventReader
}

// NewRideUC creates a new ride use case
func NewRideUC(rideRepo rides.RideRepo, users rides.UserReader, events rides.EventReader) *RideUC {
	return &RideUC{
		rideRepo: rideRepo,
		users:    users,
		events:   events,
	}
}
