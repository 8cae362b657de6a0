package create_booking

import (
	"context"

	"github.com/xarena/XArena-BookingService/internal/domain"
)

// BookingRepository is the booking storage interface
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// SlotRepository is the slot storage interface
type SlotRepository interface {
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Slot, error)
	MarkOccupied(ctx context.Context, id int64) error
}

// FieldRepository is the field storage interface
type FieldRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Field, error)
}

// UserRepository is the user storage interface
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// TransactionManager runs functions inside database transactions
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
