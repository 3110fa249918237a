package gateway

import (
	"context"

	"github.com/piresc/unityride/internal/pkg/constants"
	"github.com/piresc/unityride/internal/pkg/models"
	natspkg "github.com/piresc/unityride/internal/pkg/nats"
	nr "github.com/piresc/unityride/internal/pkg/newrelic"
)

// UserGW publishes account events on NATS
type UserGW struct {
	natsClient *natspkg.Client
}

// NewUserGW creates a new NATS gateway instance
func NewUserGW(client *natspkg.Client) *UserGW {
	return &UserGW{natsClient: client}
}

// PublishPasswordReset hands a reset token to the mailer
func (g *UserGW) PublishPasswordReset(ctx context.Context, event models.PasswordResetEvent) error {
	defer nr.StartMessageSegment(ctx, constants.SubjectPasswordResetRequested)()
	return g.natsClient.PublishJSON(constants.SubjectPasswordResetRequested, event)
}
