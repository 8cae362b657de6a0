package slots

import (
	"context"

	"github.com/xarena/XArena-BookingService/internal/domain"
)

// SlotRepository is the slot storage interface
type SlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Slot, error)
	Update(ctx context.Context, id int64, slot *domain.Slot) (*domain.Slot, error)
}

// BookingRepository is the booking storage interface
type BookingRepository interface {
	CountActiveBySlot(ctx context.Context, slotID int64) (int, error)
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
