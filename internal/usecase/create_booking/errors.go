package create_booking

import "errors"

var (
	// ErrSlotNotFound is returned when the requested slot does not exist
	ErrSlotNotFound = errors.New("create_booking: slot not found")

	// ErrSlotNotAvailable is returned when the slot is already taken
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrFieldNotAvailable is returned when the slot's field is closed for booking
	ErrFieldNotAvailable = errors.New("create_booking: field is not available")

	// ErrUserNotFound is returned when the booking user does not exist
	ErrUserNotFound = errors.New("create_booking: user not found")

	// ErrPermissionDenied is returned when the user's role may not book
	ErrPermissionDenied = errors.New("create_booking: permission denied")

	// ErrInvalidInput is returned on malformed input data
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal is returned on internal usecase errors
	ErrInternal = errors.New("create_booking: internal error")
)
