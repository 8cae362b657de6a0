package field

import "errors"

var (
	// ErrFieldNotFound is returned when the field does not exist
	ErrFieldNotFound = errors.New("field.repository: field not found")

	// ErrBuildQuery is returned when the SQL query could not be built
	ErrBuildQuery = errors.New("field.repository: failed to build query")

	// ErrExecQuery is returned when the SQL query failed to execute
	ErrExecQuery = errors.New("field.repository: failed to execute query")

	// ErrScanRow is returned when a result row could not be scanned
	ErrScanRow = errors.New("field.repository: failed to scan row")
)
