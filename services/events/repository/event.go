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

// EventRepo implements events.EventRepo on Postgres
type EventRepo struct {
	db *sqlx.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *sqlx.DB) *EventRepo {
	return &EventRepo{db: db}
}

// CreateEvent inserts an event
func (r *EventRepo) CreateEvent(ctx context.Context, event *models.Event) error {
	defer nr.StartDatastoreSegment(ctx, "events", "INSERT")()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO events (id, title, date, location, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		event.ID, event.Title, event.Date, event.Location, event.Description, event.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

// GetEvent retrieves an event by ID
func (r *EventRepo) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	defer nr.StartDatastoreSegment(ctx, "events", "SELECT")()

	var event models.Event
	err := r.db.GetContext(ctx, &event,
		`SELECT id, title, date, location, description, created_at FROM events WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("event")
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return &event, nil
}

// ListEvents returns events ordered by date. upcomingOnly hides events
// from before today.
func (r *EventRepo) ListEvents(ctx context.Context, upcomingOnly bool) ([]models.Event, error) {
	defer nr.StartDatastoreSegment(ctx, "events", "SELECT")()

	query := `SELECT id, title, date, location, description, created_at FROM events`
	if upcomingOnly {
		query += ` WHERE date >= date_trunc('day', now())`
	}
	query += ` ORDER BY date ASC`

	list := []models.Event{}
	if err := r.db.SelectContext(ctx, &list, query); err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return list, nil
}
