package gateway

import (
	"context"
	"fmt"

	"github.com/piresc/unityride/internal/pkg/constants"
	"github.com/piresc/unityride/internal/pkg/models"
	natspkg "github.com/piresc/unityride/internal/pkg/nats"
	nr "github.com/piresc/unityride/internal/pkg/newrelic"
)

// NotificationGW publishes notification events on NATS
type NotificationGW struct {
	natsClient *natspkg.Client
}

// NewNotificationGW creates a new NATS gateway instance
func NewNotificationGW(client *natspkg.Client) *NotificationGW {
	return &NotificationGW{natsClient: client}
}

// PublishNotification publishes on the per-user subject read by the WebSocket feed
func (g *NotificationGW) PublishNotification(ctx context.Context, n *models.Notification) error {
	subject := fmt.Sprintf(constants.SubjectNotificationCreated, n.UserID)
	defer nr.StartMessageSegment(ctx, subject)()
	return g.natsClient.PublishJSON(subject, n)
}
