package events

import (
	"context"

	"github.com/piresc/unityride/internal/pkg/models"
)

// EventUC defines the event business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/unityride/services/events EventUC
type EventUC interface {
	ListUpcoming(ctx context.Context) ([]models.Event, error)
	ListAll(ctx context.Context, s models.Session) ([]models.Event, error)
	GetEvent(ctx context.Context, id string) (*models.Event, error)
	CreateEvent(ctx context.Context, s models.Session, req models.CreateEventRequest) (*models.Event, error)
}
