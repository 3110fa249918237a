package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/unityride/internal/pkg/apperr"
	"github.com/piresc/unityride/internal/pkg/models"
	nr "github.com/piresc/unityride/internal/pkg/newrelic"
	"github.com/piresc/unityride/services/admin"
)

const userColumns = `id, email, password_hash, display_name, role, phone_number, car_model,
	plate_number, photo_url, is_verified, verification_status, created_at, updated_at`

const listLimit = 500

var countQueries = map[string]string{
	admin.EntityUsers:                `SELECT COUNT(*) FROM users`,
	admin.EntityEvents:               `SELECT COUNT(*) FROM events`,
	admin.EntityRides:                `SELECT COUNT(*) FROM rides`,
	admin.EntityBookings:             `SELECT COUNT(*) FROM bookings`,
	admin.EntityPendingVerifications: `SELECT COUNT(*) FROM users WHERE verification_status = 'PENDING'`,
}

// AdminRepo implements admin.AdminRepo on Postgres
type AdminRepo struct {
	db *sqlx.DB
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *sqlx.DB) *AdminRepo {
	return &AdminRepo{db: db}
}

// GetUserByID retrieves a user by ID
func (r *AdminRepo) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	defer nr.StartDatastoreSegment(ctx, "users", "SELECT")()

	var u models.User
	if err := r.db.GetContext(ctx, &u, `SELECT `+userColumns+` FROM users WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("user")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

// ListUsers returns users newest first. A non-empty search matches the
// display name or email case-insensitively.
func (r *AdminRepo) ListUsers(ctx context.Context, search string) ([]models.User, error) {
	defer nr.StartDatastoreSegment(ctx, "users", "SELECT")()

	query := `SELECT ` + userColumns + ` FROM users`
	args := []interface{}{}
	if search = strings.TrimSpace(search); search != "" {
		query += ` WHERE display_name ILIKE $1 OR email ILIKE $1`
		args = append(args, "%"+escapeLike(search)+"%")
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT %d`, listLimit)

	list := []models.User{}
	if err := r.db.SelectContext(ctx, &list, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return list, nil
}

// ListPendingVerifications returns drivers waiting for review, oldest request first
func (r *AdminRepo) ListPendingVerifications(ctx context.Context) ([]models.User, error) {
	defer nr.StartDatastoreSegment(ctx, "users", "SELECT")()

	list := []models.User{}
	err := r.db.SelectContext(ctx, &list,
		`SELECT `+userColumns+` FROM users WHERE verification_status = $1 ORDER BY updated_at ASC`,
		models.VerificationPending)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending verifications: %w", err)
	}
	return list, nil
}

// SetDriverVerification records the admin decision and returns the updated user
func (r *AdminRepo) SetDriverVerification(ctx context.Context, id string, approve bool) (*models.User, error) {
	defer nr.StartDatastoreSegment(ctx, "users", "UPDATE")()

	status := models.VerificationRejected
	if approve {
		status = models.VerificationVerified
	}

	var u models.User
	err := r.db.GetContext(ctx, &u, `
		UPDATE users SET is_verified = $2, verification_status = $3, updated_at = now()
		WHERE id = $1
		RETURNING `+userColumns, id, approve, status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("user")
		}
		return nil, fmt.Errorf("failed to set verification: %w", err)
	}
	return &u, nil
}

// DeleteUser hard-deletes an account. Rides and bookings are left as they are.
func (r *AdminRepo) DeleteUser(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "users", "user", id)
}

// DeleteEvent hard-deletes an event. Rides and bookings are left as they are.
func (r *AdminRepo) DeleteEvent(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "events", "event", id)
}

func (r *AdminRepo) deleteByID(ctx context.Context, table, entity, id string) error {
	defer nr.StartDatastoreSegment(ctx, table, "DELETE")()

	res, err := r.db.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", entity, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.NotFound(entity)
	}
	return nil
}

// CountEntities counts one of the admin.Entity* sets
func (r *AdminRepo) CountEntities(ctx context.Context, entity string) (int, error) {
	query, ok := countQueries[entity]
	if !ok {
		return 0, fmt.Errorf("unknown entity %q", entity)
	}
	defer nr.StartDatastoreSegment(ctx, entity, "COUNT")()

	var n int
	if err := r.db.GetContext(ctx, &n, query); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", entity, err)
	}
	return n, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
