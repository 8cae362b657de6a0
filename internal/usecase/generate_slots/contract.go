package generate_slots

import (
	"context"

	"github.com/xarena/XArena-BookingService/internal/domain"
)

// SlotRepository is the slot storage interface
type SlotRepository interface {
	Create(ctx context.Context, slot *domain.Slot) (*domain.Slot, error)
}

// FieldRepository is the field storage interface
type FieldRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Field, error)
}

// UserRepository is the user storage interface
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
