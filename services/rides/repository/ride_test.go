package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/piresc/unityride/internal/pkg/apperr"
	"github.com/piresc/unityride/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

var rideCols = []string{"id", "event_id", "driver_id", "driver_name", "car_model", "plate_number",
	"pickup_location", "pickup_time", "seats_available", "total_seats", "price", "passengers", "status", "created_at"}

func rideRow(rows *sqlmock.Rows, id string, seats int, passengers string) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(id, "e1", "d1", "Budi", "Avanza", "B 1 AB", "Church Gate", now,
		seats, 3, 0.0, passengers, "OPEN", now)
}

func TestCreateRide(t *testing.T) {
	// Arrange
	db, mock := setupMockDB(t)
	repo := NewRideRepository(db)
	ride := &models.Ride{
		ID: uuid.NewString(), EventID: "e1", DriverID: "d1", DriverName: "Budi", CarModel: "Avanza",
		PickupLocation: "Church Gate", PickupTime: time.Now(), SeatsAvailable: 3, TotalSeats: 3,
		Passengers: pq.StringArray{}, Status: models.RideStatusOpen, CreatedAt: time.Now(),
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO rides")).
		WithArgs(ride.ID, "e1", "d1", "Budi", "Avanza", "", "Church Gate", ride.PickupTime,
			3, 3, 0.0, sqlmock.AnyArg(), models.RideStatusOpen, ride.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	// Act
	err := repo.CreateRide(context.Background(), ride)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRide(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM rides WHERE id = $1")).
			WithArgs("r1").
			WillReturnRows(rideRow(sqlmock.NewRows(rideCols), "r1", 2, "{rider-1}"))

		ride, err := NewRideRepository(db).GetRide(context.Background(), "r1")

		require.NoError(t, err)
		assert.Equal(t, 2, ride.SeatsAvailable)
		assert.True(t, ride.HasPassenger("rider-1"))
	})

	t.Run("missing", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM rides WHERE id = $1")).
			WillReturnError(sql.ErrNoRows)

		_, err := NewRideRepository(db).GetRide(context.Background(), "r1")

		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}

func TestListOpenRidesByEvent(t *testing.T) {
	// Arrange
	db, mock := setupMockDB(t)
	rows := sqlmock.NewRows(rideCols)
	rideRow(rows, "r1", 1, "{}")
	rideRow(rows, "r2", 3, "{}")
	mock.ExpectQuery(regexp.QuoteMeta("WHERE event_id = $1 AND status = $2 AND seats_available > 0")).
		WithArgs("e1", models.RideStatusOpen).
		WillReturnRows(rows)

	// Act
	list, err := NewRideRepository(db).ListOpenRidesByEvent(context.Background(), "e1")

	// Assert
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRidesByDriver_Empty(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE driver_id = $1")).
		WithArgs("d1").
		WillReturnRows(sqlmock.NewRows(rideCols))

	list, err := NewRideRepository(db).ListRidesByDriver(context.Background(), "d1")

	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestUpdateRideStatus(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRideRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE rides SET status = $2")).
		WithArgs("r1", models.RideStatusClosed).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE rides SET status = $2")).
		WithArgs("gone", models.RideStatusClosed).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.UpdateRideStatus(context.Background(), "r1", models.RideStatusClosed))
	assert.ErrorIs(t, repo.UpdateRideStatus(context.Background(), "gone", models.RideStatusClosed), apperr.ErrNotFound)
}
