package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/xarena/XArena-BookingService/internal/domain"
	fieldRepo "github.com/xarena/XArena-BookingService/internal/infra/storage/field"
	"github.com/xarena/XArena-BookingService/internal/pricing"
)

// UseCase lists the free slots of a field
type UseCase struct {
	slotRepo  SlotRepository
	fieldRepo FieldRepository
	logger    Logger
}

// NewUseCase creates a new usecase instance
func NewUseCase(slotRepo SlotRepository, fieldRepo FieldRepository, logger Logger) *UseCase {
	return &UseCase{
		slotRepo:  slotRepo,
		fieldRepo: fieldRepo,
		logger:    logger,
	}
}

// Execute returns the field's free slots with prices derived from the
// field's current hourly rate at read time.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.FieldID <= 0 {
		return nil, fmt.Errorf("%w: fieldID must be positive", ErrInvalidInput)
	}

	field, err := uc.fieldRepo.GetByID(ctx, req.FieldID)
	if err != nil {
		if errors.Is(err, fieldRepo.ErrFieldNotFound) {
			uc.logger.Warn("GetAvailableSlots: field id=%d not found", req.FieldID)
			return nil, ErrFieldNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get field id=%d: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: failed to get field: %v", ErrInternal, err)
	}

	slots, err := uc.slotRepo.ListByFilter(ctx, domain.SlotsFilter{
		FieldID:  req.FieldID,
		Date:     req.Date,
		FreeOnly: true,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list slots for field id=%d: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}

	result := make([]Slot, 0, len(slots))
	for _, s := range slots {
		price, err := pricing.ForSlot(s, field)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to price slot id=%d: %v", s.ID, err)
			return nil, fmt.Errorf("%w: failed to price slot: %v", ErrInternal, err)
		}

		result = append(result, Slot{
			ID:        s.ID,
			FieldID:   s.FieldID,
			Date:      s.Date,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Price:     price,
		})
	}

	uc.logger.Info("GetAvailableSlots: field id=%d has %d free slots", req.FieldID, len(result))

	return &Response{
		FieldID:   field.ID,
		FieldName: field.Name,
		Slots:     result,
	}, nil
}
