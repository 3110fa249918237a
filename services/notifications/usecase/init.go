package usecase

import (
	"github.com/piresc/unityride/internal/pkg/models"
	"github.com/piresc/unityride/services/notifications"
)

const defaultListLimit = 100

// NotificationUC implements the notification use case interface
type NotificationUC struct {
	repo      notifications.NotificationRepo
	cache     notifications.UnreadCache
	gw        notifications.NotificationGW
	listLimit int
}

// NewNotificationUC creates a new notification use case
func NewNotificationUC(
	repo notifications.NotificationRepo,
	cache notifications.UnreadCache,
	gw notifications.NotificationGW,
	cfg *models.Config,
) *NotificationUC {
	limit := cfg.Notify.ListLimit
	if limit <= 0 {
		limit = defaultListLimit
	}
	return &NotificationUC{
		repo:      repo,
		cache:     cache,
		gw:        gw,
		listLimit: limit,
	}
}
