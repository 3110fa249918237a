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

const userColumns = `id, email, password_hash, display_name, role, phone_number, car_model,
	plate_number, photo_url, is_verified, verification_status, created_at, updated_at`

// UserRepo implements users.UserRepo on Postgres
type UserRepo struct {
	db *sqlx.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sqlx.DB) *UserRepo {
	return &UserRepo{db: db}
}

// CreateUser inserts a new account. A duplicate email yields apperr.ErrEmailTaken.
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) error {
	defer nr.StartDatastoreSegment(ctx, "users", "INSERT")()

	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.DisplayName, user.Role,
		user.PhoneNumber, user.CarModel, user.PlateNumber, user.PhotoURL,
		user.IsVerified, user.VerificationStatus, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return apperr.ErrEmailTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByID retrieves a user by ID
func (r *UserRepo) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetUserByEmail retrieves a user by normalized email
func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *UserRepo) getOne(ctx context.Context, query string, arg string) (*models.User, error) {
	defer nr.StartDatastoreSegment(ctx, "users", "SELECT")()

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("user")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// CompleteOnboarding stores the chosen role and mandatory profile fields.
// Verification is reset so a new driver always starts unverified.
func (r *UserRepo) CompleteOnboarding(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET role = $2, display_name = $3, phone_number = $4, car_model = $5, plate_number = $6,
			is_verified = FALSE, verification_status = $7, updated_at = now()
		WHERE id = $1
	`
	return r.updateOne(ctx, query, user.ID, user.Role, user.DisplayName, user.PhoneNumber,
		user.CarModel, user.PlateNumber, models.VerificationNone)
}

// UpdatePhone changes the contact number
func (r *UserRepo) UpdatePhone(ctx context.Context, id, phone string) error {
	return r.updateOne(ctx, `UPDATE users SET phone_number = $2, updated_at = now() WHERE id = $1`, id, phone)
}

// UpdateVehicle changes the car details
func (r *UserRepo) UpdateVehicle(ctx context.Context, id, carModel, plateNumber string) error {
	return r.updateOne(ctx,
		`UPDATE users SET car_model = $2, plate_number = $3, updated_at = now() WHERE id = $1`,
		id, carModel, plateNumber)
}

// UpdatePhotoURL stores a new avatar URL
func (r *UserRepo) UpdatePhotoURL(ctx context.Context, id, photoURL string) error {
	return r.updateOne(ctx, `UPDATE users SET photo_url = $2, updated_at = now() WHERE id = $1`, id, photoURL)
}

// UpdatePassword replaces the stored bcrypt hash
func (r *UserRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	return r.updateOne(ctx,
		`UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`, id, passwordHash)
}

// SetVerificationStatus moves the verification request state
func (r *UserRepo) SetVerificationStatus(ctx context.Context, id string, status models.VerificationStatus) error {
	return r.updateOne(ctx,
		`UPDATE users SET verification_status = $2, updated_at = now() WHERE id = $1`, id, status)
}

func (r *UserRepo) updateOne(ctx context.Context, query string, args ...interface{}) error {
	defer nr.StartDatastoreSegment(ctx, "users", "UPDATE")()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return apperr.NotFound("user")
	}
	return nil
}

// CountRidesOffered counts the rides a driver has listed
func (r *UserRepo) CountRidesOffered(ctx context.Context, driverID string) (int, error) {
	return r.count(ctx, "rides", `SELECT COUNT(*) FROM rides WHERE driver_id = $1`, driverID)
}

// CountBookingsMade counts the seat requests a rider has made
func (r *UserRepo) CountBookingsMade(ctx context.Context, riderID string) (int, error) {
	return r.count(ctx, "bookings", `SELECT COUNT(*) FROM bookings WHERE rider_id = $1`, riderID)
}

func (r *UserRepo) count(ctx context.Context, table, query, arg string) (int, error) {
	defer nr.StartDatastoreSegment(ctx, table, "SELECT")()

	var n int
	if err := r.db.GetContext(ctx, &n, query, arg); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return n, nil
}
