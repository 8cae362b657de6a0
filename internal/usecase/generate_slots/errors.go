package generate_slots

import "errors"

var (
	// ErrFieldNotFound is returned when the target field does not exist
	ErrFieldNotFound = errors.New("generate_slots: field not found")

	// ErrUserNotFound is returned when the acting user does not exist
	ErrUserNotFound = errors.New("generate_slots: user not found")

	// ErrPermissionDenied is returned when the user's role may not generate slots
	ErrPermissionDenied = errors.New("generate_slots: permission denied")

	// ErrInvalidDuration is returned when the duration is below 30 minutes
	// or not a multiple of 30
	ErrInvalidDuration = errors.New("generate_slots: invalid slot duration")

	// ErrInvalidDateRange is returned when endDate precedes startDate
	ErrInvalidDateRange = errors.New("generate_slots: invalid date range")

	// ErrInvalidTimeWindow is returned when the daily window is malformed
	ErrInvalidTimeWindow = errors.New("generate_slots: invalid time window")

	// ErrInvalidInput is returned on malformed input data
	ErrInvalidInput = errors.New("generate_slots: invalid input data")

	// ErrInternal is returned on internal usecase errors
	ErrInternal = errors.New("generate_slots: internal error")
)
