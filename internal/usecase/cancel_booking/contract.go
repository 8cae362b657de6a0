package cancel_booking

import (
	"context"

	"github.com/xarena/XArena-BookingService/internal/domain"
)

// BookingRepository is the booking storage interface
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, staffID *int64) error
}

// SlotRepository is the slot storage interface
type SlotRepository interface {
	MarkFree(ctx context.Context, id int64) error
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
