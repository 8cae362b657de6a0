package bookings

import (
	"context"

	"github.com/xarena/XArena-BookingService/internal/domain"
)

// BookingRepository is the booking storage interface
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, staffID *int64) error
}

// SlotRepository is the slot storage interface
type SlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Slot, error)
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
