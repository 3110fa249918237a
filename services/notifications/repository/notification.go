package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/unityride/internal/pkg/apperr"
	"github.com/piresc/unityride/internal/pkg/models"
	nr "github.com/piresc/unityride/internal/pkg/newrelic"
)

// NotificationRepo implements notifications.NotificationRepo on Postgres
type NotificationRepo struct {
	db *sqlx.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *sqlx.DB) *NotificationRepo {
	return &NotificationRepo{db: db}
}

// CreateNotification inserts a notification
func (r *NotificationRepo) CreateNotification(ctx context.Context, n *models.Notification) error {
	defer nr.StartDatastoreSegment(ctx, "notifications", "INSERT")()

	query := `
		INSERT INTO notifications (id, user_id, title, message, type, link, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		n.ID, n.UserID, n.Title, n.Message, n.Type, n.Link, n.IsRead, n.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// ListByUser returns the newest notifications of a user
func (r *NotificationRepo) ListByUser(ctx context.Context, userID string, limit int) ([]models.Notification, error) {
	defer nr.StartDatastoreSegment(ctx, "notifications", "SELECT")()

	query := `
		SELECT id, user_id, title, message, type, link, is_read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	list := []models.Notification{}
	if err := r.db.SelectContext(ctx, &list, query, userID, limit); err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return list, nil
}

// MarkRead flags one notification as read. Notifications of other users are
// reported as not found.
func (r *NotificationRepo) MarkRead(ctx context.Context, userID, notificationID string) error {
	defer nr.StartDatastoreSegment(ctx, "notifications", "UPDATE")()

	res, err := r.db.ExecContext(ctx,
		`UPDATE notifications SET is_read = TRUE WHERE id = $1 AND user_id = $2`,
		notificationID, userID)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return apperr.NotFound("notification")
	}
	return nil
}

// MarkAllRead flags every unread notification of a user in one statement
func (r *NotificationRepo) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	defer nr.StartDatastoreSegment(ctx, "notifications", "UPDATE")()

	res, err := r.db.ExecContext(ctx,
		`UPDATE notifications SET is_read = TRUE WHERE user_id = $1 AND NOT is_read`,
		userID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n, nil
}

// CountUnread counts the unread notifications of a user
func (r *NotificationRepo) CountUnread(ctx context.Context, userID string) (int, error) {
	defer nr.StartDatastoreSegment(ctx, "notifications", "SELECT")()

	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND NOT is_read`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}
