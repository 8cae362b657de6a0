package slot

import "errors"

var (
	// ErrSlotNotFound is returned when the slot does not exist
	ErrSlotNotFound = errors.New("slot.repository: slot not found")

	// ErrSlotNotAvailable is returned when a conditional flag flip finds
	// the slot already in the opposite state
	ErrSlotNotAvailable = errors.New("slot.repository: slot not available")

	// ErrBuildQuery is returned when the SQL query could not be built
	ErrBuildQuery = errors.New("slot.repository: failed to build query")

	// ErrExecQuery is returned when the SQL query failed to execute
	ErrExecQuery = errors.New("slot.repository: failed to execute query")

	// ErrScanRow is returned when a result row could not be scanned
	ErrScanRow = errors.New("slot.repository: failed to scan row")
)
