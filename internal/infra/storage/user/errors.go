package user

import "errors"

var (
	// ErrUserNotFound is returned when the user does not exist
	ErrUserNotFound = errors.New("user.repository: user not found")

	// ErrBuildQuery is returned when the SQL query could not be built
	ErrBuildQuery = errors.New("user.repository: failed to build query")

	// ErrExecQuery is returned when the SQL query failed to execute
	ErrExecQuery = errors.New("user.repository: failed to execute query")

	// ErrScanRow is returned when a result row could not be scanned
	ErrScanRow = errors.New("user.repository: failed to scan row")
)
