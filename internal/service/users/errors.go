package users

import "errors"

var (
	// ErrUserNotFound is returned when the acting user does not exist
	ErrUserNotFound = errors.New("user not found")

	// ErrAccessDenied is returned when the user may not list customers
	ErrAccessDenied = errors.New("access denied")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("service: internal error")
)
