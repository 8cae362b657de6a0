package pricing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/xarena/XArena-BookingService/internal/domain"
	"github.com/xarena/XArena-BookingService/pkg/types"
)

var (
	// ErrInvalidInterval is returned when a slot interval is malformed
	ErrInvalidInterval = errors.New("pricing: invalid slot interval")
)

var minutesPerHour = decimal.NewFromInt(60)

// Calculate derives the price of a time interval at the given hourly
// rate: rate * minutes / 60, in exact decimal arithmetic. The duration
// comes purely from the slot's clock times; slots never cross midnight.
// Pure function, no side effects. Prices are never persisted, so a later
// rate change is reflected in every subsequent read.
func Calculate(start, end types.TimeString, hourlyRate decimal.Decimal) (decimal.Decimal, error) {
	minutes, err := start.MinutesUntil(end)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrInvalidInterval, err)
	}
	if minutes <= 0 {
		return decimal.Zero, fmt.Errorf("%w: end %s is not after start %s", ErrInvalidInterval, end, start)
	}

	return hourlyRate.Mul(decimal.NewFromInt(int64(minutes))).Div(minutesPerHour), nil
}

// ForSlot computes the price of booking a slot at a field
func ForSlot(slot *domain.Slot, field *domain.Field) (decimal.Decimal, error) {
	return Calculate(slot.StartTime, slot.EndTime, field.HourlyRate)
}
