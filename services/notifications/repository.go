package notifications

import (
	"context"

	"github.com/piresc/unityride/internal/pkg/models"
)

// NotificationRepo persists notifications
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/unityride/services/notifications NotificationRepo,UnreadCache
type NotificationRepo interface {
	CreateNotification(ctx context.Context, n *models.Notification) error
	ListByUser(ctx context.Context, userID string, limit int) ([]models.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID string) error
	MarkAllRead(ctx context.Context, userID string) (int64, error)
	CountUnread(ctx context.Context, userID string) (int, error)
}

// UnreadCache keeps the per-user unread badge counter
type UnreadCache interface {
	Get(ctx context.Context, userID string) (models.UnreadSnapshot, error)
	Fill(ctx context.Context, userID string, count int, generation string) (bool, error)
	IncrIfPresent(ctx context.Context, userID string) error
	Invalidate(ctx context.Context, userID string) error
}
