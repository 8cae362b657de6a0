package fields

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/xarena/XArena-BookingService/internal/domain"
	fieldRepo "github.com/xarena/XArena-BookingService/internal/infra/storage/field"
	userRepo "github.com/xarena/XArena-BookingService/internal/infra/storage/user"
	"github.com/xarena/XArena-BookingService/internal/service/fields/models"
)

// Service manages the field catalog
type Service struct {
	fieldRepo  FieldRepository
	reviewRepo ReviewRepository
	userRepo   UserRepository
	logger     Logger
}

// NewService creates a new fields service
func NewService(
	fieldRepo FieldRepository,
	reviewRepo ReviewRepository,
	userRepo UserRepository,
	logger Logger,
) *Service {
	return &Service{
		fieldRepo:  fieldRepo,
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// Create adds a field to the catalog. Admin only.
func (s *Service) Create(ctx context.Context, req *models.CreateFieldRequest) (*models.FieldResponse, error) {
	s.logger.Info("CreateField: user=%d, name=%q", req.ActorID, req.Name)

	if err := s.checkAdminAccess(ctx, req.ActorID); err != nil {
		return nil, err
	}

	if err := validateName(req.Name); err != nil {
		s.logger.Warn("CreateField: validation failed: %v", err)
		return nil, err
	}
	if err := validateDescription(req.Description); err != nil {
		s.logger.Warn("CreateField: validation failed: %v", err)
		return nil, err
	}
	if req.HourlyRate.IsNegative() {
		return nil, fmt.Errorf("%w: hourlyRate must not be negative", ErrInvalidInput)
	}

	field := &domain.Field{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		HourlyRate:  req.HourlyRate,
		IsAvailable: true,
	}
	if req.IsAvailable != nil {
		field.IsAvailable = *req.IsAvailable
	}

	created, err := s.fieldRepo.Create(ctx, field)
	if err != nil {
		s.logger.Error("CreateField: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateField: created field id=%d", created.ID)
	return models.FromDomainField(&domain.FieldWithRating{Field: *created}), nil
}

// GetByID fetches one field with its derived rating. Public.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.FieldResponse, error) {
	field, err := s.fieldRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, fieldRepo.ErrFieldNotFound) {
			s.logger.Warn("GetField: field id=%d not found", id)
			return nil, ErrFieldNotFound
		}
		s.logger.Error("GetField: repository error for field id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	decorated, err := s.decorate(ctx, field)
	if err != nil {
		return nil, err
	}

	return models.FromDomainField(decorated), nil
}

// List returns the whole catalog with ratings, ordered by name. Public.
func (s *Service) List(ctx context.Context) (*models.FieldListResponse, error) {
	fields, err := s.fieldRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListFields: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	responses := make([]models.FieldResponse, 0, len(fields))
	for _, field := range fields {
		decorated, err := s.decorate(ctx, field)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *models.FromDomainField(decorated))
	}

	return &models.FieldListResponse{
		Fields: responses,
		Total:  len(responses),
	}, nil
}

// Update changes a field's attributes. Admin only. A rate change takes
// effect on every price derived afterwards, existing bookings included.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateFieldRequest) (*models.FieldResponse, error) {
	s.logger.Info("UpdateField: user=%d, field=%d", req.ActorID, id)

	if err := s.checkAdminAccess(ctx, req.ActorID); err != nil {
		return nil, err
	}

	field, err := s.fieldRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, fieldRepo.ErrFieldNotFound) {
			s.logger.Warn("UpdateField: field id=%d not found", id)
			return nil, ErrFieldNotFound
		}
		s.logger.Error("UpdateField: repository error for field id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if req.Name != nil {
		if err := validateName(*req.Name); err != nil {
			return nil, err
		}
		field.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		if err := validateDescription(*req.Description); err != nil {
			return nil, err
		}
		field.Description = *req.Description
	}
	if req.HourlyRate != nil {
		if req.HourlyRate.IsNegative() {
			return nil, fmt.Errorf("%w: hourlyRate must not be negative", ErrInvalidInput)
		}
		field.HourlyRate = *req.HourlyRate
	}
	if req.IsAvailable != nil {
		field.IsAvailable = *req.IsAvailable
	}

	updated, err := s.fieldRepo.Update(ctx, id, field)
	if err != nil {
		if errors.Is(err, fieldRepo.ErrFieldNotFound) {
			return nil, ErrFieldNotFound
		}
		s.logger.Error("UpdateField: repository error for field id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	decorated, err := s.decorate(ctx, updated)
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateField: updated field id=%d", id)
	return models.FromDomainField(decorated), nil
}

// Delete removes a field. Admin only. Slots, bookings and reviews go
// with it through the schema's cascades.
func (s *Service) Delete(ctx context.Context, id int64, actorID int64) error {
	s.logger.Info("DeleteField: user=%d, field=%d", actorID, id)

	if err := s.checkAdminAccess(ctx, actorID); err != nil {
		return err
	}

	if err := s.fieldRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, fieldRepo.ErrFieldNotFound) {
			s.logger.Warn("DeleteField: field id=%d not found", id)
			return ErrFieldNotFound
		}
		s.logger.Error("DeleteField: repository error for field id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteField: deleted field id=%d", id)
	return nil
}

func (s *Service) checkAdminAccess(ctx context.Context, actorID int64) error {
	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("fields: user id=%d not found", actorID)
			return ErrUserNotFound
		}
		s.logger.Error("fields: failed to get user id=%d: %v", actorID, err)
		return fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	if !domain.Allowed(actor.Role, domain.ActionManageFields) {
		s.logger.Warn("fields: access denied for user=%d", actorID)
		return ErrAccessDenied
	}

	return nil
}

func (s *Service) decorate(ctx context.Context, field *domain.Field) (*domain.FieldWithRating, error) {
	avg, count, err := s.reviewRepo.AverageRating(ctx, field.ID)
	if err != nil {
		s.logger.Error("fields: failed to get rating for field id=%d: %v", field.ID, err)
		return nil, fmt.Errorf("%w: failed to get rating: %v", ErrInternal, err)
	}

	return &domain.FieldWithRating{
		Field:         *field,
		AverageRating: avg,
		ReviewCount:   count,
	}, nil
}

func validateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(trimmed) > domain.MaxFieldNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidInput, domain.MaxFieldNameLength)
	}
	return nil
}

func validateDescription(description string) error {
	if len(description) > domain.MaxFieldDescriptionLength {
		return fmt.Errorf("%w: description exceeds %d characters", ErrInvalidInput, domain.MaxFieldDescriptionLength)
	}
	return nil
}
