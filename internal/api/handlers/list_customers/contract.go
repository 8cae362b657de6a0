package list_customers

import (
	"context"

	"github.com/xarena/XArena-BookingService/internal/service/users/models"
)

type UserService interface {
	ListCustomers(ctx context.Context, actorID int64) (*models.UserListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
