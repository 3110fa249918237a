package constants

// NATS Subjects
const (
	// Booking workflow
	SubjectBookingRequested        = "booking.requested"
	SubjectBookingApproved         = "booking.approved"
	SubjectBookingRejected         = "booking.rejected"
	SubjectBookingPassengerRemoved = "booking.passenger_removed"

	// Ride listing
	SubjectRideCancelled = "ride.cancelled"

	// Notifications, suffixed with the recipient's user id
	SubjectNotificationCreated    = "notification.created.%s"
	SubjectNotificationCreatedAll = "notification.created.*"

	// Account recovery, consumed by the mailer
	SubjectPasswordResetRequested = "auth.password_reset_requested"
)
