package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
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

var notificationColumns = []string{"id", "user_id", "title", "message", "type", "link", "is_read", "created_at"}

func TestCreateNotification_Success(t *testing.T) {
	// Arrange
	db, mock := setupMockDB(t)
	repo := NewNotificationRepository(db)
	n := &models.Notification{
		ID:        uuid.NewString(),
		UserID:    uuid.NewString(),
		Title:     "New Ride Request",
		Message:   "Ana wants to join your ride to Sunday Service",
		Type:      models.NotificationRequest,
		Link:      models.LinkMyBookings,
		CreatedAt: time.Now(),
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO notifications")).
		WithArgs(n.ID, n.UserID, n.Title, n.Message, n.Type, n.Link, false, n.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	// Act
	err := repo.CreateNotification(context.Background(), n)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateNotification_DBError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewNotificationRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO notifications")).
		WillReturnError(errors.New("connection reset"))

	err := repo.CreateNotification(context.Background(), &models.Notification{})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create notification")
}

func TestListByUser(t *testing.T) {
	// Arrange
	db, mock := setupMockDB(t)
	repo := NewNotificationRepository(db)
	userID := uuid.NewString()
	now := time.Now()

	rows := sqlmock.NewRows(notificationColumns).
		AddRow("n2", userID, "Request Approved! ✅", "Pack your bags!", "APPROVED", "/my-bookings", false, now).
		AddRow("n1", userID, "New Ride Request", "Ana wants to join", "REQUEST", "/my-bookings", true, now.Add(-time.Hour))
	mock.ExpectQuery(regexp.QuoteMeta("FROM notifications")).
		WithArgs(userID, 50).
		WillReturnRows(rows)

	// Act
	list, err := repo.ListByUser(context.Background(), userID, 50)

	// Assert
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "n2", list[0].ID)
	assert.Equal(t, models.NotificationApproved, list[0].Type)
	assert.True(t, list[1].IsRead)
}

func TestMarkRead(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "own notification", affected: 1},
		{name: "foreign or missing notification", affected: 0, wantErr: apperr.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupMockDB(t)
			repo := NewNotificationRepository(db)

			mock.ExpectExec(regexp.QuoteMeta("UPDATE notifications SET is_read = TRUE WHERE id = $1 AND user_id = $2")).
				WithArgs("n1", "u1").
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := repo.MarkRead(context.Background(), "u1", "n1")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMarkAllRead(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewNotificationRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE notifications SET is_read = TRUE WHERE user_id = $1 AND NOT is_read")).
		WithArgs("u1").
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.MarkAllRead(context.Background(), "u1")

	assert.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestCountUnread(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewNotificationRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM notifications")).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	n, err := repo.CountUnread(context.Background(), "u1")

	assert.NoError(t, err)
	assert.Equal(t, 4, n)
}
