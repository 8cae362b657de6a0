package reviews

import (
	"context"

	"github.com/xarena/XArena-BookingService/internal/service/reviews/models"
)

type ReviewService interface {
	Create(ctx context.Context, req *models.CreateReviewRequest) (*models.ReviewResponse, error)
	ListByField(ctx context.Context, fieldID int64) (*models.ReviewListResponse, error)
	Delete(ctx context.Context, id int64, actorID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
