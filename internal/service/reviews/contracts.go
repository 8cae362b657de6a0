package reviews

import (
	"context"

	"github.com/xarena/XArena-BookingService/internal/domain"
)

// ReviewRepository is the review storage interface
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	ExistsByUserAndField(ctx context.Context, userID, fieldID int64) (bool, error)
	ListByField(ctx context.Context, fieldID int64) ([]*domain.Review, error)
	Delete(ctx context.Context, id int64) error
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
