package manage_fields

import (
	"context"

	"github.com/xarena/XArena-BookingService/internal/service/fields/models"
)

type FieldService interface {
	Create(ctx context.Context, req *models.CreateFieldRequest) (*models.FieldResponse, error)
	GetByID(ctx context.Context, id int64) (*models.FieldResponse, error)
	List(ctx context.Context) (*models.FieldListResponse, error)
	Update(ctx context.Context, id int64, req *models.UpdateFieldRequest) (*models.FieldResponse, error)
	Delete(ctx context.Context, id int64, actorID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
