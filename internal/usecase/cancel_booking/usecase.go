package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/xarena/XArena-BookingService/internal/domain"
	bookingRepo "github.com/xarena/XArena-BookingService/internal/infra/storage/booking"
	userRepo "github.com/xarena/XArena-BookingService/internal/infra/storage/user"
)

// UseCase cancels a customer's own pending booking
type UseCase struct {
	bookingRepo BookingRepository
	slotRepo    SlotRepository
	userRepo    UserRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase creates a new usecase instance
func NewUseCase(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	userRepo UserRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		slotRepo:    slotRepo,
		userRepo:    userRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute cancels the booking and frees its slot in one serializable
// transaction. Only the owner may cancel, and only while the booking
// is still pending; once staff accepted it the customer path is closed.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelBooking: user=%d, booking=%d", req.UserID, req.BookingID)

	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	user, err := uc.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("CancelBooking: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("CancelBooking: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	if !domain.Allowed(user.Role, domain.ActionCancelOwnBooking) {
		uc.logger.Warn("CancelBooking: role %s may not cancel bookings", user.Role)
		return nil, ErrPermissionDenied
	}

	var result *domain.Booking

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Locks the booking row inside the transaction.
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("CancelBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if booking.UserID != req.UserID {
			uc.logger.Warn("CancelBooking: booking id=%d belongs to user %d, not %d",
				booking.ID, booking.UserID, req.UserID)
			return ErrNotOwner
		}

		if !booking.CanBeCancelledByCustomer() {
			uc.logger.Warn("CancelBooking: booking id=%d has status %s", booking.ID, booking.Status)
			return ErrNotCancellable
		}

		if err := uc.bookingRepo.UpdateStatus(txCtx, booking.ID, domain.StatusCancelled, nil); err != nil {
			uc.logger.Error("CancelBooking: failed to update booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		// The slot goes back on the market with the cancellation.
		if err := uc.slotRepo.MarkFree(txCtx, booking.SlotID); err != nil {
			uc.logger.Error("CancelBooking: failed to free slot id=%d: %v", booking.SlotID, err)
			return fmt.Errorf("%w: failed to free slot: %v", ErrInternal, err)
		}

		// Re-read so the response carries the stored updated_at.
		cancelled, err := uc.bookingRepo.GetByID(txCtx, booking.ID)
		if err != nil {
			uc.logger.Error("CancelBooking: failed to reload booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to reload booking: %v", ErrInternal, err)
		}

		result = cancelled
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CancelBooking: booking id=%d cancelled, slot id=%d freed", result.ID, result.SlotID)

	return &Response{
		ID:        result.ID,
		UserID:    result.UserID,
		SlotID:    result.SlotID,
		Status:    string(result.Status),
		UpdatedAt: result.UpdatedAt,
	}, nil
}
