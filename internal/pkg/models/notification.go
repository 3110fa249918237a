package models

import "time"

// NotificationType categorises a notification
type NotificationType string

const (
	NotificationRequest  NotificationType = "REQUEST"
	NotificationApproved NotificationType = "APPROVED"
	NotificationRejected NotificationType = "REJECTED"
	NotificationInfo     NotificationType = "INFO"
)

// Default deep links carried by notifications
const (
	LinkMyBookings = "/my-bookings"
	LinkProfile    = "/profile"
)

// Notification is an in-app message addressed to one user
type Notification struct {
	ID        string           `json:"id" db:"id"`
	UserID    string           `json:"user_id" db:"user_id"`
	Title     string           `json:"title" db:"title"`
	Message   string           `json:"message" db:"message"`
	Type      NotificationType `json:"type" db:"type"`
	Link      string           `json:"link" db:"link"`
	IsRead    bool             `json:"is_read" db:"is_read"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
}

// UnreadCount is the payload of the unread badge endpoint
type UnreadCount struct {
	Unread int `json:"unread"`
}

// UnreadSnapshot is one read of the cached unread counter. Generation moves
// on every write, so a fill computed under an older generation is dropped.
type UnreadSnapshot struct {
	Count      int
	Hit        bool
	Generation string
}
