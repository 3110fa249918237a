package models

import "time"

// Event is a church event rides are offered to
type Event struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Date        time.Time `json:"date" db:"date"`
	Location    string    `json:"location" db:"location"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// CreateEventRequest is the admin payload for a new event
type CreateEventRequest struct {
	Title       string    `json:"title" validate:"required,max=150"`
	Date        time.Time `json:"date" validate:"required"`
	Location    string    `json:"location" validate:"required,max=200"`
	Description string    `json:"description" validate:"max=2000"`
}
