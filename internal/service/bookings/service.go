package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/xarena/XArena-BookingService/internal/domain"
	bookingRepo "github.com/xarena/XArena-BookingService/internal/infra/storage/booking"
	userRepo "github.com/xarena/XArena-BookingService/internal/infra/storage/user"
	"github.com/xarena/XArena-BookingService/internal/pricing"
	"github.com/xarena/XArena-BookingService/internal/service/bookings/models"
	"github.com/xarena/XArena-BookingService/pkg/ptr"
)

// Service reads and mutates bookings
type Service struct {
	bookingRepo BookingRepository
	slotRepo    SlotRepository
	fieldRepo   FieldRepository
	userRepo    UserRepository
	logger      Logger
}

// NewService creates a new bookings service
func NewService(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	fieldRepo FieldRepository,
	userRepo UserRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		slotRepo:    slotRepo,
		fieldRepo:   fieldRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// GetByID fetches one booking. A customer sees only their own
// bookings; staff and admins see any.
func (s *Service) GetByID(ctx context.Context, id int64, actorID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, actorID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if booking.UserID != actorID {
		actor, err := s.getActor(ctx, actorID)
		if err != nil {
			return nil, err
		}
		if !domain.Allowed(actor.Role, domain.ActionViewAnyBooking) {
			s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", actorID, id)
			return nil, ErrAccessDenied
		}
	}

	return s.assemble(ctx, booking)
}

// GetUserBookings returns one user's booking history, optionally
// narrowed to a status
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	if req.ActorID != req.UserID {
		actor, err := s.getActor(ctx, req.ActorID)
		if err != nil {
			return nil, err
		}
		if !domain.Allowed(actor.Role, domain.ActionViewAnyBooking) {
			s.logger.Warn("GetUserBookings: access denied for user=%d viewing user=%d", req.ActorID, req.UserID)
			return nil, ErrAccessDenied
		}
	}

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	return s.assembleList(ctx, bookings)
}

// GetFieldBookings returns a field's bookings for the staff desk.
// Cancelled bookings are hidden unless asked for.
func (s *Service) GetFieldBookings(ctx context.Context, req *models.GetFieldBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetFieldBookings: fetching bookings for field=%d by user=%d", req.FieldID, req.ActorID)

	actor, err := s.getActor(ctx, req.ActorID)
	if err != nil {
		return nil, err
	}
	if !domain.Allowed(actor.Role, domain.ActionViewAnyBooking) {
		s.logger.Warn("GetFieldBookings: access denied for user=%d", req.ActorID)
		return nil, ErrAccessDenied
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetFieldBookings: invalid filter for field=%d: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetFieldBookings: repository error for field=%d: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: GetFieldBookings - repository error: %v", ErrInternal, err)
	}

	return s.assembleList(ctx, bookings)
}

// UpdateStatus moves a booking to any valid status on behalf of staff.
// Unlike the customer cancel path there is no transition guard: the
// desk corrects bookings operationally, including reopening a finished
// one. The acting staff member is recorded as handler.
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s by user=%d",
		bookingID, req.Status, req.ActorID)

	actor, err := s.getActor(ctx, req.ActorID)
	if err != nil {
		return err
	}
	if !domain.Allowed(actor.Role, domain.ActionUpdateBookingStatus) {
		s.logger.Warn("UpdateStatus: access denied for user=%d", req.ActorID)
		return ErrAccessDenied
	}

	status, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s", req.Status)
		return ErrInvalidStatus
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, status, ptr.Ptr(req.ActorID)); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: booking id=%d moved to status=%s", bookingID, status)
	return nil
}

func (s *Service) getActor(ctx context.Context, actorID int64) (*domain.User, error) {
	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("bookings: user id=%d not found", actorID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("bookings: failed to get user id=%d: %v", actorID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}
	return actor, nil
}

// assemble loads the slot and field behind a booking and derives the
// price from the field's current rate. Prices are never stored, so a
// rate change shows up in every subsequent read.
func (s *Service) assemble(ctx context.Context, booking *domain.Booking) (*models.BookingResponse, error) {
	slot, err := s.slotRepo.GetByID(ctx, booking.SlotID)
	if err != nil {
		s.logger.Error("bookings: failed to get slot id=%d: %v", booking.SlotID, err)
		return nil, fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
	}

	field, err := s.fieldRepo.GetByID(ctx, slot.FieldID)
	if err != nil {
		s.logger.Error("bookings: failed to get field id=%d: %v", slot.FieldID, err)
		return nil, fmt.Errorf("%w: failed to get field: %v", ErrInternal, err)
	}

	price, err := pricing.ForSlot(slot, field)
	if err != nil {
		s.logger.Error("bookings: failed to price slot id=%d: %v", slot.ID, err)
		return nil, fmt.Errorf("%w: failed to price slot: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking, slot, field, price), nil
}

func (s *Service) assembleList(ctx context.Context, bookings []*domain.Booking) (*models.BookingListResponse, error) {
	responses := make([]models.BookingResponse, 0, len(bookings))

	for _, booking := range bookings {
		resp, err := s.assemble(ctx, booking)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}

	return &models.BookingListResponse{
		Bookings: responses,
		Total:    len(responses),
	}, nil
}
