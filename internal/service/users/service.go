package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/xarena/XArena-BookingService/internal/domain"
	userRepo "github.com/xarena/XArena-BookingService/internal/infra/storage/user"
	"github.com/xarena/XArena-BookingService/internal/service/users/models"
)

// Service exposes account listings to the staff desk
type Service struct {
	userRepo UserRepository
	logger   Logger
}

// NewService creates a new users service
func NewService(userRepo UserRepository, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		logger:   logger,
	}
}

// ListCustomers lists customer accounts for the on-behalf booking form.
// Staff only.
func (s *Service) ListCustomers(ctx context.Context, actorID int64) (*models.UserListResponse, error) {
	s.logger.Info("ListCustomers: user=%d", actorID)

	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("ListCustomers: user id=%d not found", actorID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("ListCustomers: failed to get user id=%d: %v", actorID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	if !domain.Allowed(actor.Role, domain.ActionCreateBookingStaff) {
		s.logger.Warn("ListCustomers: access denied for user=%d", actorID)
		return nil, ErrAccessDenied
	}

	customers, err := s.userRepo.ListByRole(ctx, domain.RoleCustomer)
	if err != nil {
		s.logger.Error("ListCustomers: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCustomers - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainUsers(customers), nil
}
