package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/unityride/internal/pkg/logger"
	"github.com/piresc/unityride/internal/pkg/models"
	"github.com/piresc/unityride/internal/pkg/observability"
)

// Send appends a notification for userID. It is best-effort: failures are
// logged and counted, never returned, and nothing is retried.
func (uc *NotificationUC) Send(ctx context.Context, userID, title, message string, typ models.NotificationType, link string) {
	if link == "" {
		link = models.LinkMyBookings
	}
	n := &models.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      typ,
		Link:      link,
		CreatedAt: time.Now().UTC(),
	}

	if err := uc.repo.CreateNotification(ctx, n); err != nil {
		observability.NotificationsSent.WithLabelValues("failed").Inc()
		logger.ErrorCtx(ctx, "Failed to send notification",
			logger.String("user_id", userID),
			logger.String("type", string(typ)),
			logger.Err(err))
		return
	}
	observability.NotificationsSent.WithLabelValues("ok").Inc()

	if err := uc.cache.IncrIfPresent(ctx, userID); err != nil {
		logger.WarnCtx(ctx, "Failed to bump unread counter",
			logger.String("user_id", userID),
			logger.Err(err))
	}
	if err := uc.gw.PublishNotification(ctx, n); err != nil {
		logger.WarnCtx(ctx, "Failed to publish notification event",
			logger.String("user_id", userID),
			logger.Err(err))
	}
}

// List returns the caller's newest notifications
func (uc *NotificationUC) List(ctx context.Context, s models.Session) ([]models.Notification, error) {
	return uc.repo.ListByUser(ctx, s.UserID, uc.listLimit)
}

// MarkRead marks one of the caller's notifications as read
func (uc *NotificationUC) MarkRead(ctx context.Context, s models.Session, notificationID string) error {
	if err := uc.repo.MarkRead(ctx, s.UserID, notificationID); err != nil {
		return err
	}
	uc.invalidate(ctx, s.UserID)
	return nil
}

// MarkAllRead marks every unread notification of the caller as read
func (uc *NotificationUC) MarkAllRead(ctx context.Context, s models.Session) (int64, error) {
	n, err := uc.repo.MarkAllRead(ctx, s.UserID)
	if err != nil {
		return 0, err
	}
	uc.invalidate(ctx, s.UserID)
	return n, nil
}

// UnreadCount serves the badge counter from Redis, falling back to Postgres.
// A recount is cached only if no notification write raced it.
func (uc *NotificationUC) UnreadCount(ctx context.Context, s models.Session) (int, error) {
	snap, cacheErr := uc.cache.Get(ctx, s.UserID)
	if cacheErr != nil {
		logger.WarnCtx(ctx, "Unread cache unavailable, counting in database",
			logger.String("user_id", s.UserID),
			logger.Err(cacheErr))
	} else if snap.Hit {
		return snap.Count, nil
	}

	n, err := uc.repo.CountUnread(ctx, s.UserID)
	if err != nil {
		return 0, err
	}
	if cacheErr != nil {
		return n, nil
	}
	if _, err := uc.cache.Fill(ctx, s.UserID, n, snap.Generation); err != nil {
		logger.WarnCtx(ctx, "Failed to cache unread counter",
			logger.String("user_id", s.UserID),
			logger.Err(err))
	}
	return n, nil
}

func (uc *NotificationUC) invalidate(ctx context.Context, userID string) {
	if err := uc.cache.Invalidate(ctx, userID); err != nil {
		logger.WarnCtx(ctx, "Failed to invalidate unread counter",
			logger.String("user_id", userID),
			logger.Err(err))
	}
}
