package reviews

import (
	"context"
	"errors"
	"fmt"

	"github.com/xarena/XArena-BookingService/internal/domain"
	fieldRepo "github.com/xarena/XArena-BookingService/internal/infra/storage/field"
	reviewRepo "github.com/xarena/XArena-BookingService/internal/infra/storage/review"
	userRepo "github.com/xarena/XArena-BookingService/internal/infra/storage/user"
	"github.com/xarena/XArena-BookingService/internal/service/reviews/models"
)

// Service manages field reviews
type Service struct {
	reviewRepo ReviewRepository
	fieldRepo  FieldRepository
	userRepo   UserRepository
	logger     Logger
}

// NewService creates a new reviews service
func NewService(
	reviewRepo ReviewRepository,
	fieldRepo FieldRepository,
	userRepo UserRepository,
	logger Logger,
) *Service {
	return &Service{
		reviewRepo: reviewRepo,
		fieldRepo:  fieldRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// Create leaves a review on a field. One review per user per field,
// checked by a read before the insert. Two simultaneous first reviews
// can both pass the check; the window is accepted, a later write wins
// nothing and the duplicate stays visible.
func (s *Service) Create(ctx context.Context, req *models.CreateReviewRequest) (*models.ReviewResponse, error) {
	s.logger.Info("CreateReview: user=%d, field=%d, rating=%d", req.UserID, req.FieldID, req.Rating)

	user, err := s.getUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	if !domain.Allowed(user.Role, domain.ActionCreateReview) {
		s.logger.Warn("CreateReview: access denied for user=%d", req.UserID)
		return nil, ErrAccessDenied
	}

	if !domain.ValidRating(req.Rating) {
		s.logger.Warn("CreateReview: invalid rating=%d", req.Rating)
		return nil, ErrInvalidRating
	}

	if req.Comment != nil && len(*req.Comment) > domain.MaxCommentLength {
		return nil, fmt.Errorf("%w: comment exceeds %d characters", ErrInvalidInput, domain.MaxCommentLength)
	}

	if _, err := s.fieldRepo.GetByID(ctx, req.FieldID); err != nil {
		if errors.Is(err, fieldRepo.ErrFieldNotFound) {
			s.logger.Warn("CreateReview: field id=%d not found", req.FieldID)
			return nil, ErrFieldNotFound
		}
		s.logger.Error("CreateReview: failed to get field id=%d: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: failed to get field: %v", ErrInternal, err)
	}

	exists, err := s.reviewRepo.ExistsByUserAndField(ctx, req.UserID, req.FieldID)
	if err != nil {
		s.logger.Error("CreateReview: failed to check existing review: %v", err)
		return nil, fmt.Errorf("%w: failed to check existing review: %v", ErrInternal, err)
	}
	if exists {
		s.logger.Warn("CreateReview: user=%d already reviewed field=%d", req.UserID, req.FieldID)
		return nil, ErrAlreadyReviewed
	}

	created, err := s.reviewRepo.Create(ctx, &domain.Review{
		UserID:  req.UserID,
		FieldID: req.FieldID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		s.logger.Error("CreateReview: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateReview: created review id=%d", created.ID)
	return models.FromDomainReview(created), nil
}

// ListByField returns a field's reviews, newest first. Public.
func (s *Service) ListByField(ctx context.Context, fieldID int64) (*models.ReviewListResponse, error) {
	if _, err := s.fieldRepo.GetByID(ctx, fieldID); err != nil {
		if errors.Is(err, fieldRepo.ErrFieldNotFound) {
			s.logger.Warn("ListReviews: field id=%d not found", fieldID)
			return nil, ErrFieldNotFound
		}
		s.logger.Error("ListReviews: failed to get field id=%d: %v", fieldID, err)
		return nil, fmt.Errorf("%w: failed to get field: %v", ErrInternal, err)
	}

	reviews, err := s.reviewRepo.ListByField(ctx, fieldID)
	if err != nil {
		s.logger.Error("ListReviews: repository error for field id=%d: %v", fieldID, err)
		return nil, fmt.Errorf("%w: ListByField - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReviewList(reviews), nil
}

// Delete removes a review for moderation. Staff only.
func (s *Service) Delete(ctx context.Context, id int64, actorID int64) error {
	s.logger.Info("DeleteReview: user=%d, review=%d", actorID, id)

	actor, err := s.getUser(ctx, actorID)
	if err != nil {
		return err
	}

	if !domain.Allowed(actor.Role, domain.ActionDeleteReview) {
		s.logger.Warn("DeleteReview: access denied for user=%d", actorID)
		return ErrAccessDenied
	}

	if err := s.reviewRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reviewRepo.ErrReviewNotFound) {
			s.logger.Warn("DeleteReview: review id=%d not found", id)
			return ErrReviewNotFound
		}
		s.logger.Error("DeleteReview: repository error for review id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteReview: deleted review id=%d", id)
	return nil
}

func (s *Service) getUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("reviews: user id=%d not found", userID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("reviews: failed to get user id=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}
	return user, nil
}
