package fields

import "errors"

var (
	// ErrFieldNotFound is returned when the field does not exist
	ErrFieldNotFound = errors.New("field not found")

	// ErrUserNotFound is returned when the acting user does not exist
	ErrUserNotFound = errors.New("user not found")

	// ErrAccessDenied is returned when the user may not manage fields
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput is returned on malformed input data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("service: internal error")
)
