package usecase

import "github.com/piresc/unityride/services/bookings"

// BookingUC implements the booking workflow use case interface
type BookingUC struct {
	bookingRepo bookings.BookingRepo
	rides       bookings.RideReader
	users       bookings.UserReader
	events      bookings.EventReader
	notifier    bookings.Notifier
	bookingGW   bookings.BookingGW
}

// NewBookingUC creates a new booking use case
func NewBookingUC(
	bookingRepo bookings.BookingRepo,
	rides bookings.RideReader,
	users bookings.UserReader,
	events bookings.EventReader,
	notifier bookings.Notifier,
	bookingGW bookings.BookingGW,
) *BookingUC {
	return &BookingUC{
		bookingRepo: bookingRepo,
		rides:       rides,
		users:       users,
		events:      events,
		notifier:    notifier,
		bookingGW:   bookingGW,
	}
}
