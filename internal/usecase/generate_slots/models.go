package generate_slots

import (
	"time"

	"github.com/xarena/XArena-BookingService/pkg/types"
)

// Request carries the slot generation parameters
type Request struct {
	UserID          int64            // ID of the acting admin
	FieldID         int64            // ID of the field to generate slots for
	StartDate       time.Time        // first day of the range, inclusive
	EndDate         time.Time        // last day of the range, inclusive
	StartTime       types.TimeString // daily window opening time
	EndTime         types.TimeString // daily window closing time
	DurationMinutes int              // length of each slot
}

// Response reports how many slots were created
type Response struct {
	FieldID      int64
	SlotsCreated int
}
