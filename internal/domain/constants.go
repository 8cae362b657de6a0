package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Slot generation constraints. Durations come from the admin form and
// must align to the half-hour grid.
const (
	MinSlotDurationMinutes  = 30
	SlotDurationStepMinutes = 30
)

// Review constraints
const (
	MinRating        = 1
	MaxRating        = 5
	MaxCommentLength = 500
)

// Field constraints
const (
	MaxFieldNameLength        = 100
	MaxFieldDescriptionLength = 500
)

// ActiveStatuses are the statuses that keep a slot occupied.
// A cancelled booking releases its slot; every other status holds it.
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusAccepted,
	StatusCompleted,
}
