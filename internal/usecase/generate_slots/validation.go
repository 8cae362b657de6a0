package generate_slots

import (
	"fmt"

	"github.com/xarena/XArena-BookingService/internal/domain"
)

// validateRequest validates the request payload
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.FieldID <= 0 {
		return fmt.Errorf("%w: fieldID must be positive", ErrInvalidInput)
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	if dateOnly(req.EndDate).Before(dateOnly(req.StartDate)) {
		return fmt.Errorf("%w: endDate %s precedes startDate %s",
			ErrInvalidDateRange, req.EndDate.Format(domain.DateFormat), req.StartDate.Format(domain.DateFormat))
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}

	if !req.StartTime.IsBefore(req.EndTime) {
		return fmt.Errorf("%w: window end %s is not after start %s",
			ErrInvalidTimeWindow, req.EndTime, req.StartTime)
	}

	if req.DurationMinutes < domain.MinSlotDurationMinutes {
		return fmt.Errorf("%w: duration must be at least %d minutes",
			ErrInvalidDuration, domain.MinSlotDurationMinutes)
	}
	if req.DurationMinutes%domain.SlotDurationStepMinutes != 0 {
		return fmt.Errorf("%w: duration must be a multiple of %d minutes",
			ErrInvalidDuration, domain.SlotDurationStepMinutes)
	}

	return nil
}
