package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/unityride/internal/pkg/apperr"
	"github.com/piresc/unityride/internal/pkg/logger"
	"github.com/piresc/unityride/internal/pkg/models"
	"github.com/piresc/unityride/internal/utils"
)

// ListUpcoming returns the events from today on, soonest first
func (uc *EventUC) ListUpcoming(ctx context.Context) ([]models.Event, error) {
	return uc.eventRepo.ListEvents(ctx, true)
}

// ListAll returns every event for the admin panel
func (uc *EventUC) ListAll(ctx context.Context, s models.Session) ([]models.Event, error) {
	if !s.Role.IsAdmin() {
		return nil, apperr.Forbidden("admin access required")
	}
	return uc.eventRepo.ListEvents(ctx, false)
}

// GetEvent returns one event
func (uc *EventUC) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	return uc.eventRepo.GetEvent(ctx, id)
}

// CreateEvent lets an admin publish a new event
func (uc *EventUC) CreateEvent(ctx context.Context, s models.Session, req models.CreateEventRequest) (*models.Event, error) {
	if !s.Role.IsAdmin() {
		return nil, apperr.Forbidden("admin access required")
	}

	event := &models.Event{
		ID:          uuid.NewString(),
		Title:       utils.SanitizeString(req.Title),
		Date:        req.Date.UTC(),
		Location:    utils.SanitizeString(req.Location),
		Description: req.Description,
		CreatedAt:   time.Now().UTC(),
	}
	if event.Title == "" || event.Location == "" {
		return nil, apperr.Validation("title and location are required")
	}

	if err := uc.eventRepo.CreateEvent(ctx, event); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Event created",
		logger.String("event_id", event.ID),
		logger.String("admin_id", s.UserID))
	return event, nil
}
