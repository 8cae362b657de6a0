package staff_create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/xarena/XArena-BookingService/internal/domain"
	fieldRepo "github.com/xarena/XArena-BookingService/internal/infra/storage/field"
	slotRepo "github.com/xarena/XArena-BookingService/internal/infra/storage/slot"
	userRepo "github.com/xarena/XArena-BookingService/internal/infra/storage/user"
	"github.com/xarena/XArena-BookingService/internal/pricing"
	"github.com/xarena/XArena-BookingService/pkg/ptr"
)

// UseCase creates a booking on behalf of a walk-in customer. The
// booking skips the pending stage: it is taken at the counter, so it
// starts out accepted with the acting staff member recorded as handler.
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

// Execute books a slot for the named customer under the same
// serializable transaction discipline as the customer-facing path.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("StaffCreateBooking: staff=%d, customer=%d, slot=%d, payment=%s",
		req.StaffID, req.CustomerID, req.SlotID, req.PaymentMethod)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("StaffCreateBooking: validation failed: %v", err)
		return nil, err
	}

	staff, err := uc.userRepo.GetByID(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("StaffCreateBooking: staff id=%d not found", req.StaffID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("StaffCreateBooking: failed to get staff id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}

	if !domain.Allowed(staff.Role, domain.ActionCreateBookingStaff) {
		uc.logger.Warn("StaffCreateBooking: role %s may not book on behalf of customers", staff.Role)
		return nil, ErrPermissionDenied
	}

	customer, err := uc.userRepo.GetByID(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("StaffCreateBooking: customer id=%d not found", req.CustomerID)
			return nil, ErrCustomerNotFound
		}
		uc.logger.Error("StaffCreateBooking: failed to get customer id=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
	}

	if !customer.IsCustomer() {
		uc.logger.Warn("StaffCreateBooking: user id=%d has role %s, not customer", customer.ID, customer.Role)
		return nil, ErrNotACustomer
	}

	var result *domain.Booking
	var slot *domain.Slot
	var field *domain.Field

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		s, err := uc.slotRepo.GetByIDForUpdate(txCtx, req.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				return ErrSlotNotFound
			}
			uc.logger.Error("StaffCreateBooking: failed to get slot id=%d: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		if !s.IsAvailable {
			uc.logger.Warn("StaffCreateBooking: slot id=%d is already taken", req.SlotID)
			return ErrSlotNotAvailable
		}

		f, err := uc.fieldRepo.GetByID(txCtx, s.FieldID)
		if err != nil {
			if errors.Is(err, fieldRepo.ErrFieldNotFound) {
				return ErrSlotNotFound
			}
			uc.logger.Error("StaffCreateBooking: failed to get field id=%d: %v", s.FieldID, err)
			return fmt.Errorf("%w: failed to get field: %v", ErrInternal, err)
		}

		if !f.IsAvailable {
			uc.logger.Warn("StaffCreateBooking: field id=%d is not available", f.ID)
			return ErrFieldNotAvailable
		}

		if err := uc.slotRepo.MarkOccupied(txCtx, s.ID); err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotAvailable) {
				return ErrSlotNotAvailable
			}
			uc.logger.Error("StaffCreateBooking: failed to mark slot id=%d occupied: %v", s.ID, err)
			return fmt.Errorf("%w: failed to mark slot occupied: %v", ErrInternal, err)
		}

		booking := &domain.Booking{
			UserID:        req.CustomerID,
			StaffID:       ptr.Ptr(req.StaffID),
			SlotID:        s.ID,
			PaymentMethod: req.PaymentMethod,
			Status:        domain.StatusAccepted,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("StaffCreateBooking: failed to create booking: %v", err)
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
		uc.logger.Error("StaffCreateBooking: failed to compute price for slot id=%d: %v", slot.ID, err)
		return nil, fmt.Errorf("%w: failed to compute price: %v", ErrInternal, err)
	}

	uc.logger.Info("StaffCreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:            result.ID,
		UserID:        result.UserID,
		StaffID:       result.StaffID,
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
