package slots

import "errors"

var (
	// ErrSlotNotFound is returned when the slot does not exist
	ErrSlotNotFound = errors.New("slot not found")

	// ErrUserNotFound is returned when the acting user does not exist
	ErrUserNotFound = errors.New("user not found")

	// ErrAccessDenied is returned when the user may not edit slots
	ErrAccessDenied = errors.New("access denied")

	// ErrSlotHasActiveBooking is returned when freeing a slot that an
	// active booking still references
	ErrSlotHasActiveBooking = errors.New("slot has an active booking")

	// ErrInvalidInput is returned on malformed input data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("service: internal error")
)
