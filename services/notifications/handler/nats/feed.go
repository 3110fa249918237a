package nats

import (
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/piresc/unityride/internal/pkg/constants"
	"github.com/piresc/unityride/internal/pkg/logger"
	"github.com/piresc/unityride/internal/pkg/models"
	natspkg "github.com/piresc/unityride/internal/pkg/nats"
)

// ClientNotifier pushes an event to the open sockets of a user
type ClientNotifier interface {
	NotifyClient(userID string, event string, data interface{})
}

// FeedHandler relays notification.created.* events to WebSocket clients
type FeedHandler struct {
	natsClient *natspkg.Client
	notifier   ClientNotifier
	subs       []*nats.Subscription
}

// NewFeedHandler creates a new feed handler
func NewFeedHandler(natsClient *natspkg.Client, notifier ClientNotifier) *FeedHandler {
	return &FeedHandler{
		natsClient: natsClient,
		notifier:   notifier,
	}
}

// InitNATSConsumers subscribes to every user's notification subject
func (h *FeedHandler) InitNATSConsumers() error {
	sub, err := h.natsClient.Subscribe(constants.SubjectNotificationCreatedAll, func(msg *nats.Msg) {
		if err := h.handleNotificationCreated(msg.Data); err != nil {
			logger.Error("Error handling notification event",
				logger.String("subject", msg.Subject),
				logger.Err(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to notification events: %w", err)
	}
	h.subs = append(h.subs, sub)
	return nil
}

func (h *FeedHandler) handleNotificationCreated(data []byte) error {
	var n models.Notification
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("failed to unmarshal notification event: %w", err)
	}
	if n.UserID == "" {
		return fmt.Errorf("notification event without user id")
	}
	h.notifier.NotifyClient(n.UserID, constants.EventNotificationCreated, n)
	return nil
}

// Close unsubscribes all consumers
func (h *FeedHandler) Close() {
	for _, sub := range h.subs {
		if err := sub.Unsubscribe(); err != nil {
			logger.Warn("Failed to unsubscribe", logger.String("subject", sub.Subject), logger.Err(err))
		}
	}
	h.subs = nil
}
