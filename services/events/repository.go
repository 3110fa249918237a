package events

import (
	"context"

	"github.com/piresc/unityride/internal/pkg/models"
)

// EventRepo defines the event repository interface
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/unityride/services/events EventRepo
type EventRepo interface {
	CreateEvent(ctx context.Context, event *models.Event) error
	GetEvent(ctx context.Context, id string) (*models.Event, error)
	ListEvents(ctx context.Context, upcomingOnly bool) ([]models.Event, error)
}
