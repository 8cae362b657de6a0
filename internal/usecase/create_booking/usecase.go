package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/xarena/XArena-BookingService/internal/domain"
	fieldRepo "github.com/xarena/XArena-BookingService/internal/infra/storage/field"
	slotRepo "github.com/xarena/XArena-BookingService/internal/infra/storage/slot"
	userRepo "github.com/xarena/XArena-BookingService/internal/infra/storage/user"
	"github.com/xarena/XArena-BookingService/internal/pricing"
)

// UseCase creates a booking for a customer
type UseCase struct {
	bookingRepo BookingRepository
	slotRepo    SlotRepository
	fieldRepo   FieldRepository
	userRepo    UserRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase creates a new usecase instance
func NewUseCase(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	fieldRepo FieldRepository,
	userRepo UserRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		slotRepo:    slotRepo,
		fieldRepo:   fieldRepo,
		userRepo:    userRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute books a slot for the user. The slot lookup, the availability
// flip and the booking insert run in one serializable transaction, so
// two concurrent requests for the same slot cannot both succeed.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, slot=%d, payment=%s", req.UserID, req.SlotID, req.PaymentMethod)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	user, err := uc.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("CreateBooking: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("CreateBooking: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	if !domain.Allowed(user.Role, domain.ActionCreateBooking) {
		uc.logger.Warn("CreateBooking: role %s may not create bookings", user.Role)
		return nil, ErrPermissionDenied
	}

	var result *domain.Booking
	var slot *domain.Slot
	var field *domain.Field

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Locks the slot row for the rest of the transaction.
		s, err := uc.slotRepo.GetByIDForUpdate(txCtx, req.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				return ErrSlotNotFound
			}
			uc.logger.Error("CreateBooking: failed to get slot id=%d: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		if !s.IsAvailable {
			uc.logger.Warn("CreateBooking: slot id=%d is already taken", req.SlotID)
			return ErrSlotNotAvailable
		}

		f, err := uc.fieldRepo.GetByID(txCtx, s.FieldID)
		if err != nil {
			if errors.Is(err, fieldRepo.ErrFieldNotFound) {
				return ErrSlotNotFound
			}
			uc.logger.Error("CreateBooking: failed to get field id=%d: %v", s.FieldID, err)
			return fmt.Errorf("%w: failed to get field: %v", ErrInternal, err)
		}

		if !f.IsAvailable {
			uc.logger.Warn("CreateBooking: field id=%d is not available", f.ID)
			return ErrFieldNotAvailable
		}

		if err := uc.slotRepo.MarkOccupied(txCtx, s.ID); err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotAvailable) {
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to mark slot id=%d occupied: %v", s.ID, err)
			return fmt.Errorf("%w: failed to mark slot occupied: %v", ErrInternal, err)
		}

		booking := &domain.Booking{
			UserID:        req.UserID,
			SlotID:        s.ID,
			PaymentMethod: req.PaymentMethod,
			Status:        domain.StatusPending,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		slot = s
		field = f
		return nil
	})

	if err != nil {
		return nil, err
	}

	price, err := pricing.ForSlot(slot, field)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to compute price for slot id=%d: %v", slot.ID, err)
		return nil, fmt.Errorf("%w: failed to compute price: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:            result.ID,
		UserID:        result.UserID,
		SlotID:        result.SlotID,
		FieldID:       slot.FieldID,
		Date:          slot.Date,
		StartTime:     slot.StartTime,
		EndTime:       slot.EndTime,
		PaymentMethod: string(result.PaymentMethod),
		Status:        string(result.Status),
		TotalPrice:    price,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}
