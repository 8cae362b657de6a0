package generate_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xarena/XArena-BookingService/internal/domain"
	fieldRepo "github.com/xarena/XArena-BookingService/internal/infra/storage/field"
	userRepo "github.com/xarena/XArena-BookingService/internal/infra/storage/user"
)

// UseCase generates the bookable slot grid for a field
type UseCase struct {
	slotRepo  SlotRepository
	fieldRepo FieldRepository
	userRepo  UserRepository
	logger    Logger
}

// NewUseCase creates a new usecase instance
func NewUseCase(
	slotRepo SlotRepository,
	fieldRepo FieldRepository,
	userRepo UserRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:  slotRepo,
		fieldRepo: fieldRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

// Execute walks every day of the date range and cuts the daily window
// into consecutive slots of the requested duration. A trailing remainder
// shorter than the duration is dropped. Generation does not check for
// existing slots: rerunning the same range produces duplicate rows, so
// operators extend ranges forward rather than regenerate them.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GenerateSlots: user=%d, field=%d, range=%s..%s, window=%s-%s, duration=%d",
		req.UserID, req.FieldID,
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat),
		req.StartTime, req.EndTime, req.DurationMinutes)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GenerateSlots: validation failed: %v", err)
		return nil, err
	}

	user, err := uc.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("GenerateSlots: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("GenerateSlots: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	if !domain.Allowed(user.Role, domain.ActionGenerateSlots) {
		uc.logger.Warn("GenerateSlots: role %s may not generate slots", user.Role)
		return nil, ErrPermissionDenied
	}

	field, err := uc.fieldRepo.GetByID(ctx, req.FieldID)
	if err != nil {
		if errors.Is(err, fieldRepo.ErrFieldNotFound) {
			uc.logger.Warn("GenerateSlots: field id=%d not found", req.FieldID)
			return nil, ErrFieldNotFound
		}
		uc.logger.Error("GenerateSlots: failed to get field id=%d: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: failed to get field: %v", ErrInternal, err)
	}

	created := 0
	start := dateOnly(req.StartDate)
	end := dateOnly(req.EndDate)

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		cursor := req.StartTime

		for {
			slotEnd, err := cursor.AddMinutes(req.DurationMinutes)
			if err != nil {
				// Next slot would cross midnight, the day is done.
				break
			}
			if slotEnd.IsAfter(req.EndTime) {
				break
			}

			slot := &domain.Slot{
				FieldID:     field.ID,
				Date:        day,
				StartTime:   cursor,
				EndTime:     slotEnd,
				IsAvailable: true,
			}

			if _, err := uc.slotRepo.Create(ctx, slot); err != nil {
				uc.logger.Error("GenerateSlots: failed to create slot %s %s-%s for field id=%d: %v",
					day.Format(domain.DateFormat), cursor, slotEnd, field.ID, err)
				return nil, fmt.Errorf("%w: failed to create slot: %v", ErrInternal, err)
			}

			created++
			cursor = slotEnd
		}
	}

	uc.logger.Info("GenerateSlots: created %d slots for field id=%d", created, field.ID)

	return &Response{
		FieldID:      field.ID,
		SlotsCreated: created,
	}, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
