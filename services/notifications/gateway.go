package notifications

import (
	"context"

	"github.com/piresc/unityride/internal/pkg/models"
)

// NotificationGW publishes realtime notification events
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/unityride/services/notifications NotificationGW
type NotificationGW interface {
	PublishNotification(ctx context.Context, n *models.Notification) error
}
