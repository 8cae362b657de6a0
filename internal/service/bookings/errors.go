package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("booking not found")

	// ErrUserNotFound is returned when the acting user does not exist
	ErrUserNotFound = errors.New("user not found")

	// ErrAccessDenied is returned when the user may not see or change the booking
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidStatus is returned on an unknown booking status value
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidInput is returned on malformed input data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("service: internal error")
)
