package constants

// WebSocket event types
const (
	EventError               = "error"
	EventConnected           = "connected"
	EventNotificationCreated = "notification_created"
)
