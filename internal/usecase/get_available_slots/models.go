package get_available_slots

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/xarena/XArena-BookingService/pkg/types"
)

// Request carries the slot listing filter
type Request struct {
	FieldID int64      // ID of the field
	Date    *time.Time // optional: limit to one day
}

// Slot describes one free slot with its current price
type Slot struct {
	ID        int64
	FieldID   int64
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Price     decimal.Decimal
}

// Response lists the free slots, ordered by date and start time
type Response struct {
	FieldID   int64
	FieldName string
	Slots     []Slot
}
