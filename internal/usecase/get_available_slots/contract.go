package get_available_slots

import (
	"context"

	"github.com/xarena/XArena-BookingService/internal/domain"
)

// SlotRepository is the slot storage interface
type SlotRepository interface {
	ListByFilter(ctx context.Context, filter domain.SlotsFilter) ([]*domain.Slot, error)
}

// FieldRepository is the field storage interface
type FieldRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Field, error)
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
