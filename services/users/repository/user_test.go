package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
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

var userCols = []string{"id", "email", "password_hash", "display_name", "role", "phone_number", "car_model",
	"plate_number", "photo_url", "is_verified", "verification_status", "created_at", "updated_at"}

func newUser() *models.User {
	now := time.Now()
	return &models.User{
		ID:                 uuid.NewString(),
		Email:              "ana@example.com",
		PasswordHash:       "hash",
		DisplayName:        "Ana",
		VerificationStatus: models.VerificationNone,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

func TestCreateUser_Success(t *testing.T) {
	// Arrange
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)
	u := newUser()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(u.ID, u.Email, u.PasswordHash, u.DisplayName, "", "", "", "", "", false, "NONE", u.CreatedAt, u.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	// Act
	err := repo.CreateUser(context.Background(), u)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.CreateUser(context.Background(), newUser())

	assert.ErrorIs(t, err, apperr.ErrConflict)
	assert.Equal(t, apperr.ErrEmailTaken, err)
}

func TestGetUserByEmail(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewUserRepository(db)
		now := time.Now()

		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
			WithArgs("ana@example.com").
			WillReturnRows(sqlmock.NewRows(userCols).AddRow(
				"u1", "ana@example.com", "hash", "Ana", "DRIVER", "0812", "Avanza", "B 1 AB", "",
				true, "VERIFIED", now, now))

		u, err := repo.GetUserByEmail(context.Background(), "ana@example.com")

		require.NoError(t, err)
		assert.Equal(t, "u1", u.ID)
		assert.Equal(t, models.RoleDriver, u.Role)
		assert.True(t, u.IsVerified)
		assert.Equal(t, models.VerificationVerified, u.VerificationStatus)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetUserByEmail(context.Background(), "nobody@example.com")

		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("db error", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
			WillReturnError(errors.New("connection refused"))

		_, err := repo.GetUserByEmail(context.Background(), "ana@example.com")

		assert.Error(t, err)
		assert.NotErrorIs(t, err, apperr.ErrNotFound)
	})
}

func TestCompleteOnboarding(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)
	u := newUser()
	u.Role = models.RoleDriverRider
	u.PhoneNumber = "0812"
	u.CarModel = "Avanza"
	u.PlateNumber = "B 1 AB"

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users")).
		WithArgs(u.ID, "DRIVER-RIDER", u.DisplayName, "0812", "Avanza", "B 1 AB", "NONE").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.CompleteOnboarding(context.Background(), u))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdates_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET phone_number")).
		WithArgs("missing", "0812").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET car_model")).
		WithArgs("missing", "Avanza", "B 1 AB").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET photo_url")).
		WithArgs("missing", "https://ui-avatars.com/api/?name=A").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET verification_status")).
		WithArgs("missing", "PENDING").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.UpdatePhone(ctx, "missing", "0812"), apperr.ErrNotFound)
	assert.ErrorIs(t, repo.UpdateVehicle(ctx, "missing", "Avanza", "B 1 AB"), apperr.ErrNotFound)
	assert.ErrorIs(t, repo.UpdatePhotoURL(ctx, "missing", "https://ui-avatars.com/api/?name=A"), apperr.ErrNotFound)
	assert.ErrorIs(t, repo.SetVerificationStatus(ctx, "missing", models.VerificationPending), apperr.ErrNotFound)
	assert.ErrorIs(t, repo.UpdatePassword(ctx, "missing", "$2a$hash"), apperr.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCounts(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM rides WHERE driver_id = $1")).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM bookings WHERE rider_id = $1")).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	rides, err := repo.CountRidesOffered(ctx, "u1")
	require.NoError(t, err)
	bookings, err := repo.CountBookingsMade(ctx, "u1")
	require.NoError(t, err)

	assert.Equal(t, 4, rides)
	assert.Equal(t, 2, bookings)
}
