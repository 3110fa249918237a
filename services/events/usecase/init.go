package usecase

import "github.com/piresc/unityride/services/events"

// EventUC implements the event use case interface
type EventUC struct {
	eventRepo events.EventRepo
}

// NewEventUC creates a new event use case
func NewEventUC(eventRepo events.EventRepo) *EventUC {
	return &EventUC{eventRepo: eventRepo}
}
