package domain

import (
	"time"

	"github.com/xarena/XArena-BookingService/pkg/types"
)

// Slot represents one bookable time interval of a field on a given date.
// Its availability flag is the single source of truth for "is this slot
// free"; the booking lifecycle flips it under a row lock.
type Slot struct {
	ID          int64
	FieldID     int64
	Date        time.Time // calendar date, time part zero
	StartTime   types.TimeString
	EndTime     types.TimeString
	IsAvailable bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DurationMinutes returns the slot length in minutes
func (s *Slot) DurationMinutes() (int, error) {
	return s.StartTime.MinutesUntil(s.EndTime)
}

// SlotsFilter narrows slot listings
type SlotsFilter struct {
	FieldID  int64
	Date     *time.Time
	FreeOnly bool
}
