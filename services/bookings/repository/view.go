package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/piresc/unityride/internal/pkg/models"
	nr "github.com/piresc/unityride/internal/pkg/newrelic"
)

// bookingViewRow carries the LEFT JOINed ride columns, NULL once the ride is gone
type bookingViewRow struct {
	models.Booking
	RideDriverName     sql.NullString  `db:"ride_driver_name"`
	RideCarModel       sql.NullString  `db:"ride_car_model"`
	RidePickupLocation sql.NullString  `db:"ride_pickup_location"`
	RidePickupTime     sql.NullTime    `db:"ride_pickup_time"`
	RidePrice          sql.NullFloat64 `db:"ride_price"`
}

func (row bookingViewRow) toView() models.BookingView {
	v := models.BookingView{Booking: row.Booking}
	if row.RideDriverName.Valid {
		v.Ride = &models.RideSummary{
			DriverName:     row.RideDriverName.String,
			CarModel:       row.RideCarModel.String,
			PickupLocation: row.RidePickupLocation.String,
			PickupTime:     row.RidePickupTime.Time,
			Price:          row.RidePrice.Float64,
		}
	}
	return v
}

const bookingViewQuery = `
	SELECT b.id, b.ride_id, b.event_id, b.driver_id, b.rider_id, b.rider_name, b.status,
		b.created_at, b.updated_at,
		r.driver_name AS ride_driver_name, r.car_model AS ride_car_model,
		r.pickup_location AS ride_pickup_location, r.pickup_time AS ride_pickup_time,
		r.price AS ride_price
	FROM bookings b
	LEFT JOIN rides r ON r.id = b.ride_id
`

// ListBookingsByRider returns the rider's requests, newest first
func (r *BookingRepo) ListBookingsByRider(ctx context.Context, riderID string) ([]models.BookingView, error) {
	return r.listViews(ctx, bookingViewQuery+`WHERE b.rider_id = $1 ORDER BY b.created_at DESC`, riderID)
}

// ListBookingsByDriver returns the requests made on the driver's rides, newest first
func (r *BookingRepo) ListBookingsByDriver(ctx context.Context, driverID string) ([]models.BookingView, error) {
	return r.listViews(ctx, bookingViewQuery+`WHERE b.driver_id = $1 ORDER BY b.created_at DESC`, driverID)
}

func (r *BookingRepo) listViews(ctx context.Context, query, userID string) ([]models.BookingView, error) {
	defer nr.StartDatastoreSegment(ctx, "bookings", "SELECT")()

	var rows []bookingViewRow
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	views := make([]models.BookingView, 0, len(rows))
	for _, row := range rows {
		views = append(views, row.toView())
	}
	return views, nil
}
