package cancel_booking

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("cancel_booking: booking not found")

	// ErrUserNotFound is returned when the acting user does not exist
	ErrUserNotFound = errors.New("cancel_booking: user not found")

	// ErrNotOwner is returned when the booking belongs to someone else
	ErrNotOwner = errors.New("cancel_booking: booking belongs to another user")

	// ErrNotCancellable is returned when the booking already left the pending stage
	ErrNotCancellable = errors.New("cancel_booking: only pending bookings can be cancelled")

	// ErrPermissionDenied is returned when the user's role may not cancel bookings
	ErrPermissionDenied = errors.New("cancel_booking: permission denied")

	// ErrInvalidInput is returned on malformed input data
	ErrInvalidInput = errors.New("cancel_booking: invalid input data")

	// ErrInternal is returned on internal usecase errors
	ErrInternal = errors.New("cancel_booking: internal error")
)
