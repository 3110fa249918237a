package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/unityride/internal/pkg/apperr"
	"github.com/piresc/unityride/internal/pkg/constants"
	"github.com/piresc/unityride/internal/pkg/logger"
	"github.com/piresc/unityride/internal/pkg/models"
	"github.com/piresc/unityride/internal/pkg/observability"
)

// CreateBookingRequest asks the ride's driver for a seat
func (uc *BookingUC) CreateBookingRequest(ctx context.Context, s models.Session, rideID string) (*models.Booking, error) {
	if !s.Role.CanRide() {
		return nil, apperr.Forbidden("only riders can request seats")
	}

	ride, err := uc.rides.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride.DriverID == s.UserID {
		return nil, apperr.ErrOwnRide
	}
	if ride.Status != models.RideStatusOpen {
		return nil, apperr.ErrRideClosed
	}
	if ride.SeatsAvailable <= 0 {
		return nil, apperr.ErrNoSeatsAvailable
	}

	rider, err := uc.users.GetUserByID(ctx, s.UserID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	booking := &models.Booking{
		ID:        uuid.NewString(),
		RideID:    ride.ID,
		EventID:   ride.EventID,
		DriverID:  ride.DriverID,
		RiderID:   rider.ID,
		RiderName: rider.DisplayName,
		Status:    models.BookingStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.bookingRepo.CreateBooking(ctx, booking); err != nil {
		return nil, err
	}
	observability.BookingTransitions.WithLabelValues(string(models.BookingStatusPending)).Inc()

	eventTitle := "the event"
	if event, err := uc.events.GetEvent(ctx, ride.EventID); err == nil {
		eventTitle = event.Title
	}
	uc.notifier.Send(ctx, ride.DriverID, "New Ride Request",
		fmt.Sprintf("%s wants to join your ride to %s.", booking.RiderName, eventTitle),
		models.NotificationRequest, models.LinkMyBookings)
	uc.publish(ctx, constants.SubjectBookingRequested, booking, ride.SeatsAvailable)

	logger.InfoCtx(ctx, "Booking requested",
		logger.String("booking_id", booking.ID),
		logger.String("ride_id", ride.ID),
		logger.String("rider_id", booking.RiderID))
	return booking, nil
}

// ApproveBooking accepts a PENDING request and seats the rider
func (uc *BookingUC) ApproveBooking(ctx context.Context, s models.Session, bookingID string) (*models.Booking, error) {
	booking, err := uc.driverBooking(ctx, s, bookingID)
	if err != nil {
		return nil, err
	}
	if !booking.Status.CanTransitionTo(models.BookingStatusApproved) {
		return nil, apperr.InvalidTransition(string(booking.Status), string(models.BookingStatusApproved))
	}

	ride, err := uc.bookingRepo.ApproveBooking(ctx, booking.ID)
	if err != nil {
		if errors.Is(err, apperr.ErrNoSeatsAvailable) {
			observability.SeatConflicts.Inc()
			logger.WarnCtx(ctx, "Approval lost the last seat",
				logger.String("booking_id", booking.ID),
				logger.String("ride_id", booking.RideID))
		}
		return nil, err
	}
	booking.Status = models.BookingStatusApproved
	observability.BookingTransitions.WithLabelValues(string(models.BookingStatusApproved)).Inc()

	uc.notifier.Send(ctx, booking.RiderID, "Request Approved! ✅",
		"Pack your bags! The driver accepted your ride request.",
		models.NotificationApproved, models.LinkMyBookings)
	uc.publish(ctx, constants.SubjectBookingApproved, booking, ride.SeatsAvailable)

	logger.InfoCtx(ctx, "Booking approved",
		logger.String("booking_id", booking.ID),
		logger.Int("seats_left", ride.SeatsAvailable))
	return booking, nil
}

// RejectBooking declines a PENDING request
func (uc *BookingUC) RejectBooking(ctx context.Context, s models.Session, bookingID string) (*models.Booking, error) {
	booking, err := uc.driverBooking(ctx, s, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != models.BookingStatusPending {
		return nil, apperr.InvalidTransition(string(booking.Status), string(models.BookingStatusRejected))
	}

	if err := uc.bookingRepo.RejectBooking(ctx, booking.ID); err != nil {
		return nil, err
	}
	booking.Status = models.BookingStatusRejected
	observability.BookingTransitions.WithLabelValues(string(models.BookingStatusRejected)).Inc()

	uc.notifier.Send(ctx, booking.RiderID, "Request Declined ❌",
		"Sorry, the driver cannot take you this time.",
		models.NotificationRejected, models.LinkMyBookings)
	uc.publish(ctx, constants.SubjectBookingRejected, booking, -1)

	logger.InfoCtx(ctx, "Booking rejected", logger.String("booking_id", booking.ID))
	return booking, nil
}

// RemovePassenger drops an approved rider from the ride and frees the seat
func (uc *BookingUC) RemovePassenger(ctx context.Context, s models.Session, bookingID, rideID string) (*models.Booking, error) {
	booking, err := uc.driverBooking(ctx, s, bookingID)
	if err != nil {
		return nil, err
	}

	ride, err := uc.bookingRepo.RemovePassenger(ctx, booking.ID, rideID)
	if err != nil {
		return nil, err
	}
	booking.Status = models.BookingStatusRejected
	observability.BookingTransitions.WithLabelValues(string(models.BookingStatusRejected)).Inc()

	uc.notifier.Send(ctx, booking.RiderID, "Removed from Ride",
		"The driver removed you from their ride.",
		models.NotificationInfo, models.LinkMyBookings)
	uc.publish(ctx, constants.SubjectBookingPassengerRemoved, booking, ride.SeatsAvailable)

	logger.InfoCtx(ctx, "Passenger removed",
		logger.String("booking_id", booking.ID),
		logger.String("ride_id", ride.ID),
		logger.Int("seats_left", ride.SeatsAvailable))
	return booking, nil
}

// CancelRide deletes a ride. Its bookings stay behind and each affected
// rider is told the ride is gone.
func (uc *BookingUC) CancelRide(ctx context.Context, s models.Session, rideID string) (*models.CancelRideResult, error) {
	ride, err := uc.rides.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride.DriverID != s.UserID && !s.Role.IsAdmin() {
		return nil, apperr.ErrNotRideDriver
	}

	orphans, err := uc.bookingRepo.DeleteRide(ctx, ride.ID)
	if err != nil {
		return nil, err
	}
	observability.RidesCancelled.Inc()

	result := &models.CancelRideResult{
		RideID:           ride.ID,
		OrphanedBookings: len(orphans),
		NotifiedRiders:   []string{},
	}
	for _, b := range orphans {
		uc.notifier.Send(ctx, b.RiderID, "Ride Cancelled",
			fmt.Sprintf("%s cancelled the ride you requested.", ride.DriverName),
			models.NotificationInfo, models.LinkMyBookings)
		result.NotifiedRiders = append(result.NotifiedRiders, b.RiderID)
	}

	event := models.RideCancelledEvent{
		RideID:           ride.ID,
		EventID:          ride.EventID,
		DriverID:         ride.DriverID,
		OrphanedBookings: len(orphans),
		CancelledBy:      s.UserID,
		OccurredAt:       time.Now().UTC(),
	}
	if err := uc.bookingGW.PublishRideCancelled(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish ride cancellation",
			logger.String("ride_id", ride.ID),
			logger.Err(err))
	}

	logger.InfoCtx(ctx, "Ride cancelled",
		logger.String("ride_id", ride.ID),
		logger.String("cancelled_by", s.UserID),
		logger.Int("orphaned_bookings", len(orphans)))
	return result, nil
}

// driverBooking loads a booking and checks the caller drives its ride
func (uc *BookingUC) driverBooking(ctx context.Context, s models.Session, bookingID string) (*models.Booking, error) {
	booking, err := uc.bookingRepo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.DriverID != s.UserID {
		return nil, apperr.ErrNotRideDriver
	}
	return booking, nil
}

// publish emits a booking event. seatsLeft < 0 means the seat count did not change.
func (uc *BookingUC) publish(ctx context.Context, subject string, b *models.Booking, seatsLeft int) {
	event := models.BookingEvent{
		BookingID:  b.ID,
		RideID:     b.RideID,
		EventID:    b.EventID,
		DriverID:   b.DriverID,
		RiderID:    b.RiderID,
		Status:     b.Status,
		SeatsLeft:  seatsLeft,
		OccurredAt: time.Now().UTC(),
	}
	if err := uc.bookingGW.PublishBookingEvent(ctx, subject, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish booking event",
			logger.String("subject", subject),
			logger.String("booking_id", b.ID),
			logger.Err(err))
	}
}
