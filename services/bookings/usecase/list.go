package usecase

import (
	"context"
	"sort"

	"github.com/piresc/unityride/internal/pkg/apperr"
	"github.com/piresc/unityride/internal/pkg/models"
)

// ListBookings returns the requests on the caller's rides when they drive and
// the caller's own requests when they ride, newest first
func (uc *BookingUC) ListBookings(ctx context.Context, s models.Session) ([]models.BookingView, error) {
	views := []models.BookingView{}

	if s.Role.CanDrive() {
		list, err := uc.bookingRepo.ListBookingsByDriver(ctx, s.UserID)
		if err != nil {
			return nil, err
		}
		views = append(views, list...)
	}
	if s.Role.CanRide() {
		list, err := uc.bookingRepo.ListBookingsByRider(ctx, s.UserID)
		if err != nil {
			return nil, err
		}
		views = append(views, list...)
	}

	if s.Role.CanDrive() && s.Role.CanRide() {
		sort.SliceStable(views, func(i, j int) bool {
			return views[i].CreatedAt.After(views[j].CreatedAt)
		})
	}
	return views, nil
}

// ListRidePassengers returns the approved bookings of a ride
func (uc *BookingUC) ListRidePassengers(ctx context.Context, s models.Session, rideID string) ([]models.Booking, error) {
	ride, err := uc.rides.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride.DriverID != s.UserID && !s.Role.IsAdmin() {
		return nil, apperr.ErrNotRideDriver
	}
	return uc.bookingRepo.ListApprovedByRide(ctx, ride.ID)
}
