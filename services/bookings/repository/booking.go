package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/unityride/internal/pkg/apperr"
	"github.com/piresc/unityride/internal/pkg/database"
	"github.com/piresc/unityride/internal/pkg/models"
	nr "github.com/piresc/unityride/internal/pkg/newrelic"
)

const bookingColumns = `id, ride_id, event_id, driver_id, rider_id, rider_name, status, created_at, updated_at`

const rideReturning = `id, event_id, driver_id, driver_name, car_model, plate_number, pickup_location,
	pickup_time, seats_available, total_seats, price, passengers, status, created_at`

// BookingRepo implements bookings.BookingRepo on Postgres
type BookingRepo struct {
	db *sqlx.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *sqlx.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

// CreateBooking inserts a PENDING request. A second request for the same
// ride by the same rider yields apperr.ErrDuplicateBooking.
func (r *BookingRepo) CreateBooking(ctx context.Context, b *models.Booking) error {
	defer nr.StartDatastoreSegment(ctx, "bookings", "INSERT")()

	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		b.ID, b.RideID, b.EventID, b.DriverID, b.RiderID, b.RiderName, b.Status, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return apperr.ErrDuplicateBooking
		}
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// GetBooking retrieves a booking by ID
func (r *BookingRepo) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	defer nr.StartDatastoreSegment(ctx, "bookings", "SELECT")()

	var b models.Booking
	if err := r.db.GetContext(ctx, &b, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("booking")
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return &b, nil
}

// ApproveBooking moves a PENDING booking to APPROVED and takes one seat on
// its ride. The ride row is locked before the seat is taken, so concurrent
// approvals for the last seat cannot both commit. A ride deleted while the
// booking was pending yields a NotFound error.
func (r *BookingRepo) ApproveBooking(ctx context.Context, bookingID string) (*models.Ride, error) {
	defer nr.StartDatastoreSegment(ctx, "bookings", "APPROVE")()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	b, err := lockBooking(ctx, tx, bookingID)
	if err != nil {
		return nil, err
	}
	if !b.Status.CanTransitionTo(models.BookingStatusApproved) {
		return nil, apperr.InvalidTransition(string(b.Status), string(models.BookingStatusApproved))
	}

	if err := lockSeats(ctx, tx, b.RideID); err != nil {
		return nil, err
	}

	var ride models.Ride
	err = tx.GetContext(ctx, &ride, `
		UPDATE rides
		SET seats_available = seats_available - 1, passengers = array_append(passengers, $2)
		WHERE id = $1 AND seats_available > 0 AND NOT ($2 = ANY(passengers))
		RETURNING `+rideReturning, b.RideID, b.RiderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.Wrap(apperr.ErrConflict, "rider is already a passenger")
		}
		return nil, fmt.Errorf("failed to reserve seat: %w", err)
	}

	if err := setStatus(ctx, tx, b.ID, models.BookingStatusApproved); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit approval: %w", err)
	}
	return &ride, nil
}

// RejectBooking moves a PENDING booking to REJECTED. Seats are untouched.
func (r *BookingRepo) RejectBooking(ctx context.Context, bookingID string) error {
	defer nr.StartDatastoreSegment(ctx, "bookings", "UPDATE")()

	res, err := r.db.ExecContext(ctx,
		`UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1 AND status = $3`,
		bookingID, models.BookingStatusRejected, models.BookingStatusPending)
	if err != nil {
		return fmt.Errorf("failed to reject booking: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.Wrap(apperr.ErrInvalidTransition, "booking is no longer pending")
	}
	return nil
}

// RemovePassenger rejects an APPROVED booking and gives its seat back
func (r *BookingRepo) RemovePassenger(ctx context.Context, bookingID, rideID string) (*models.Ride, error) {
	defer nr.StartDatastoreSegment(ctx, "bookings", "REMOVE")()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	b, err := lockBooking(ctx, tx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.RideID != rideID {
		return nil, apperr.Validation("booking does not belong to this ride")
	}
	if b.Status != models.BookingStatusApproved {
		return nil, apperr.Wrap(apperr.ErrInvalidTransition, "only approved passengers can be removed")
	}

	var ride models.Ride
	err = tx.GetContext(ctx, &ride, `
		UPDATE rides
		SET seats_available = LEAST(seats_available + 1, total_seats), passengers = array_remove(passengers, $2)
		WHERE id = $1
		RETURNING `+rideReturning, rideID, b.RiderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("ride")
		}
		return nil, fmt.Errorf("failed to release seat: %w", err)
	}

	if err := setStatus(ctx, tx, b.ID, models.BookingStatusRejected); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit passenger removal: %w", err)
	}
	return &ride, nil
}

// DeleteRide removes a ride and returns the PENDING and APPROVED bookings
// left pointing at it. Bookings themselves are kept.
func (r *BookingRepo) DeleteRide(ctx context.Context, rideID string) ([]models.Booking, error) {
	defer nr.StartDatastoreSegment(ctx, "rides", "DELETE")()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	orphans := []models.Booking{}
	err = tx.SelectContext(ctx, &orphans,
		`SELECT `+bookingColumns+` FROM bookings WHERE ride_id = $1 AND status IN ($2, $3)`,
		rideID, models.BookingStatusPending, models.BookingStatusApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to list ride bookings: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM rides WHERE id = $1`, rideID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete ride: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, apperr.NotFound("ride")
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit ride deletion: %w", err)
	}
	return orphans, nil
}

// ListApprovedByRide returns the passengers of a ride in booking order
func (r *BookingRepo) ListApprovedByRide(ctx context.Context, rideID string) ([]models.Booking, error) {
	defer nr.StartDatastoreSegment(ctx, "bookings", "SELECT")()

	list := []models.Booking{}
	err := r.db.SelectContext(ctx, &list,
		`SELECT `+bookingColumns+` FROM bookings WHERE ride_id = $1 AND status = $2 ORDER BY created_at ASC`,
		rideID, models.BookingStatusApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to list passengers: %w", err)
	}
	return list, nil
}

func lockBooking(ctx context.Context, tx *sqlx.Tx, id string) (*models.Booking, error) {
	var b models.Booking
	err := tx.GetContext(ctx, &b, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1 FOR UPDATE`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("booking")
		}
		return nil, fmt.Errorf("failed to lock booking: %w", err)
	}
	return &b, nil
}

// lockSeats locks the ride row and fails unless a seat is left
func lockSeats(ctx context.Context, tx *sqlx.Tx, rideID string) error {
	var seats int
	err := tx.GetContext(ctx, &seats, `SELECT seats_available FROM rides WHERE id = $1 FOR UPDATE`, rideID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFound("ride")
		}
		return fmt.Errorf("failed to lock ride: %w", err)
	}
	if seats <= 0 {
		return apperr.ErrNoSeatsAvailable
	}
	return nil
}

func setStatus(ctx context.Context, tx *sqlx.Tx, id string, status models.BookingStatus) error {
	if _, err := tx.ExecContext(ctx,
		`UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1`, id, status); err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}
	return nil
}
