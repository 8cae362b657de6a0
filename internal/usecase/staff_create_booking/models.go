package staff_create_booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/xarena/XArena-BookingService/internal/domain"
	"github.com/xarena/XArena-BookingService/pkg/types"
)

// Request carries the input for a staff-created booking
type Request struct {
	StaffID       int64                // ID of the staff member taking the booking
	CustomerID    int64                // ID of the walk-in customer the booking is for
	SlotID        int64                // ID of the slot to book
	PaymentMethod domain.PaymentMethod // transfer or cash
}

// Response describes the created booking
type Response struct {
	ID            int64
	UserID        int64
	StaffID       *int64
	SlotID        int64
	FieldID       int64
	Date          time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	PaymentMethod string
	Status        string
	TotalPrice    decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
