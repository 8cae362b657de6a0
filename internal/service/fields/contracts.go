package fields

import (
	"context"

	"github.com/xarena/XArena-BookingService/internal/domain"
)

// FieldRepository is the field storage interface
type FieldRepository interface {
	Create(ctx context.Context, field *domain.Field) (*domain.Field, error)
	GetByID(ctx context.Context, id int64) (*domain.Field, error)
	List(ctx context.Context) ([]*domain.Field, error)
	Update(ctx context.Context, id int64, field *domain.Field) (*domain.Field, error)
	Delete(ctx context.Context, id int64) error
}

// ReviewRepository is the review storage interface
type ReviewRepository interface {
	AverageRating(ctx context.Context, fieldID int64) (float64, int, error)
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
