package notifications

import (
	"context"

	"github.com/piresc/unityride/internal/pkg/models"
)

// NotificationUC defines the notification business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/unityride/services/notifications NotificationUC
type NotificationUC interface {
	Send(ctx context.Context, userID, title, message string, typ models.NotificationType, link string)
	List(ctx context.Context, s models.Session) ([]models.Notification, error)
	MarkRead(ctx context.Context, s models.Session, notificationID string) error
	MarkAllRead(ctx context.Context, s models.Session) (int64, error)
	UnreadCount(ctx context.Context, s models.Session) (int, error)
}
