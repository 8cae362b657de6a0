package slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xarena/XArena-BookingService/internal/domain"
	slotRepo "github.com/xarena/XArena-BookingService/internal/infra/storage/slot"
	userRepo "github.com/xarena/XArena-BookingService/internal/infra/storage/user"
	"github.com/xarena/XArena-BookingService/internal/service/slots/models"
	"github.com/xarena/XArena-BookingService/pkg/types"
)

// Service edits individual slots
type Service struct {
	slotRepo    SlotRepository
	bookingRepo BookingRepository
	userRepo    UserRepository
	logger      Logger
}

// NewService creates a new slots service
func NewService(slotRepo SlotRepository, bookingRepo BookingRepository, userRepo UserRepository, logger Logger) *Service {
	return &Service{
		slotRepo:    slotRepo,
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// Update rewrites a slot's date, times or availability flag. Admin
// only. Editing a slot does not touch bookings already made on it.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateSlotRequest) (*models.SlotResponse, error) {
	s.logger.Info("UpdateSlot: user=%d, slot=%d", req.ActorID, id)

	actor, err := s.userRepo.GetByID(ctx, req.ActorID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("UpdateSlot: user id=%d not found", req.ActorID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("UpdateSlot: failed to get user id=%d: %v", req.ActorID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	if !domain.Allowed(actor.Role, domain.ActionEditSlot) {
		s.logger.Warn("UpdateSlot: access denied for user=%d", req.ActorID)
		return nil, ErrAccessDenied
	}

	slot, err := s.slotRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("UpdateSlot: slot id=%d not found", id)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("UpdateSlot: repository error for slot id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if req.Date != nil {
		date, err := time.Parse(domain.DateFormat, *req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date format, expected %s", ErrInvalidInput, domain.DateFormat)
		}
		slot.Date = date
	}
	if req.StartTime != nil {
		startTime, err := types.NewTimeStringFromString(*req.StartTime)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
		}
		slot.StartTime = startTime
	}
	if req.EndTime != nil {
		endTime, err := types.NewTimeStringFromString(*req.EndTime)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
		}
		slot.EndTime = endTime
	}

	if !slot.StartTime.IsBefore(slot.EndTime) {
		return nil, fmt.Errorf("%w: endTime %s is not after startTime %s", ErrInvalidInput, slot.EndTime, slot.StartTime)
	}

	if req.IsAvailable != nil {
		// Freeing a slot that a live booking holds would let it be sold
		// twice; the booking has to be cancelled or completed first.
		if *req.IsAvailable && !slot.IsAvailable {
			active, err := s.bookingRepo.CountActiveBySlot(ctx, id)
			if err != nil {
				s.logger.Error("UpdateSlot: failed to count bookings for slot id=%d: %v", id, err)
				return nil, fmt.Errorf("%w: failed to count bookings: %v", ErrInternal, err)
			}
			if active > 0 {
				s.logger.Warn("UpdateSlot: slot id=%d still has %d active booking(s)", id, active)
				return nil, ErrSlotHasActiveBooking
			}
		}
		slot.IsAvailable = *req.IsAvailable
	}

	updated, err := s.slotRepo.Update(ctx, id, slot)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			return nil, ErrSlotNotFound
		}
		s.logger.Error("UpdateSlot: repository error for slot id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateSlot: updated slot id=%d", id)
	return models.FromDomainSlot(updated), nil
}
