// Package apperr holds the error taxonomy shared by every service.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error kinds. Usecases wrap these with %w; handlers map them to HTTP codes.
var (
	ErrValidation        = errors.New("validation failed")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrInvalidTransition = errors.New("invalid state transition")
)

// Domain errors
var (
	ErrInvalidCredentials = Wrap(ErrUnauthorized, "invalid email or password")
	ErrEmailTaken         = Wrap(ErrConflict, "email already registered")
	ErrNoSeatsAvailable   = Wrap(ErrValidation, "no seats available")
	ErrOwnRide            = Wrap(ErrValidation, "you cannot book your own ride")
	ErrRideClosed         = Wrap(ErrValidation, "ride is not open for bookings")
	ErrDuplicateBooking   = Wrap(ErrConflict, "you already requested this ride")
	ErrDriverNotVerified  = Wrap(ErrForbidden, "driver account is not verified")
	ErrNotRideDriver      = Wrap(ErrForbidden, "only the ride's driver can do this")
)

// Error is a kind plus a message that is safe to show to clients.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Kind.Error() + ": " + e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

// Wrap attaches a message to one of the error kinds.
func Wrap(kind error, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

// Message returns the client-facing text of err. Errors outside the
// taxonomy yield fallback so internal details never leak.
func Message(err error, fallback string) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Msg
	}
	if IsClientError(err) {
		for _, kind := range []error{ErrValidation, ErrUnauthorized, ErrForbidden, ErrNotFound, ErrConflict, ErrInvalidTransition} {
			if errors.Is(err, kind) {
				return kind.Error()
			}
		}
	}
	return fallback
}

// Validation builds a validation error with a formatted message.
func Validation(format string, args ...interface{}) error {
	return Wrap(ErrValidation, fmt.Sprintf(format, args...))
}

// NotFound builds a not-found error for the named entity.
func NotFound(entity string) error {
	return Wrap(ErrNotFound, entity+" not found")
}

// Forbidden builds a forbidden error with a message.
func Forbidden(msg string) error {
	return Wrap(ErrForbidden, msg)
}

// InvalidTransition builds an error for a rejected state-machine move.
func InvalidTransition(from, to string) error {
	return Wrap(ErrInvalidTransition, fmt.Sprintf("cannot move from %s to %s", from, to))
}

// HTTPStatus maps an error to its HTTP status code. Unknown errors are 500.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict), errors.Is(err, ErrInvalidTransition):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// IsClientError reports whether err belongs to the known taxonomy.
func IsClientError(err error) bool {
	return HTTPStatus(err) < http.StatusInternalServerError
}
