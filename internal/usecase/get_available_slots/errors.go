package get_available_slots

import "errors"

var (
	// ErrFieldNotFound is returned when the field does not exist
	ErrFieldNotFound = errors.New("get_available_slots: field not found")

	// ErrInvalidInput is returned on malformed input data
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal is returned on internal usecase errors
	ErrInternal = errors.New("get_available_slots: internal error")
)
