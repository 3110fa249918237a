package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/unityride/internal/pkg/apperr"
	"github.com/piresc/unityride/internal/pkg/models"
	nr "github.com/piresc/unityride/internal/pkg/newrelic"
)

// RideColumns is the column list every ride query selects, in models.Ride order
const RideColumns = `id, event_id, driver_id, driver_name, car_model, plate_number, pickup_location,
	pickup_time, seats_available, total_seats, price, passengers, status, created_at`

// RideRepo implements rides.RideRepo on Postgres
type RideRepo struct {
	db *sqlx.DB
}

// NewRideRepository creates a new ride repository
func NewRideRepository(db *sqlx.DB) *RideRepo {
	return &RideRepo{db: db}
}

// CreateRide inserts a ride listing
func (r *RideRepo) CreateRide(ctx context.Context, ride *models.Ride) error {
	defer nr.StartDatastoreSegment(ctx, "rides", "INSERT")()

	query := `
		INSERT INTO rides (` + RideColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := r.db.ExecContext(ctx, query,
		ride.ID, ride.EventID, ride.DriverID, ride.DriverName, ride.CarModel, ride.PlateNumber,
		ride.PickupLocation, ride.PickupTime, ride.SeatsAvailable, ride.TotalSeats, ride.Price,
		ride.Passengers, ride.Status, ride.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create ride: %w", err)
	}
	return nil
}

// GetRide retrieves a ride by ID
func (r *RideRepo) GetRide(ctx context.Context, id string) (*models.Ride, error) {
	defer nr.StartDatastoreSegment(ctx, "rides", "SELECT")()

	var ride models.Ride
	if err := r.db.GetContext(ctx, &ride, `SELECT `+RideColumns+` FROM rides WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("ride")
		}
		return nil, fmt.Errorf("failed to get ride: %w", err)
	}
	return &ride, nil
}

// ListOpenRidesByEvent returns the event's open rides that still have a seat, earliest pickup first
func (r *RideRepo) ListOpenRidesByEvent(ctx context.Context, eventID string) ([]models.Ride, error) {
	defer nr.StartDatastoreSegment(ctx, "rides", "SELECT")()

	query := `
		SELECT ` + RideColumns + `
		FROM rides
		WHERE event_id = $1 AND status = $2 AND seats_available > 0
		ORDER BY pickup_time ASC
	`
	list := []models.Ride{}
	if err := r.db.SelectContext(ctx, &list, query, eventID, models.RideStatusOpen); err != nil {
		return nil, fmt.Errorf("failed to list rides for event: %w", err)
	}
	return list, nil
}

// ListRidesByDriver returns every ride the driver has offered, newest first
func (r *RideRepo) ListRidesByDriver(ctx context.Context, driverID string) ([]models.Ride, error) {
	defer nr.StartDatastoreSegment(ctx, "rides", "SELECT")()

	list := []models.Ride{}
	err := r.db.SelectContext(ctx, &list,
		`SELECT `+RideColumns+` FROM rides WHERE driver_id = $1 ORDER BY created_at DESC`, driverID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rides for driver: %w", err)
	}
	return list, nil
}

// UpdateRideStatus sets the listing status
func (r *RideRepo) UpdateRideStatus(ctx context.Context, id string, status models.RideStatus) error {
	defer nr.StartDatastoreSegment(ctx, "rides", "UPDATE")()

	res, err := r.db.ExecContext(ctx, `UPDATE rides SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("failed to update ride status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.NotFound("ride")
	}
	return nil
}
