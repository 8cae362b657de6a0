package generate_slots

import (
	"time"

	"github.com/xarena/XArena-BookingService/internal/domain"
	generateSlots "github.com/xarena/XArena-BookingService/internal/usecase/generate_slots"
	"github.com/xarena/XArena-BookingService/pkg/types"
)

// GenerateSlotsRequest is the HTTP request model
type GenerateSlotsRequest struct {
	StartDate       string `json:"startDate" validate:"required"` // "2024-06-01"
	EndDate         string `json:"endDate" validate:"required"`   // "2024-06-30"
	StartTime       string `json:"startTime" validate:"required"` // "08:00"
	EndTime         string `json:"endTime" validate:"required"`   // "22:00"
	DurationMinutes int    `json:"durationMinutes" validate:"required,gt=0"`
}

// GenerateSlotsResponse is the HTTP response model
type GenerateSlotsResponse struct {
	FieldID      int64 `json:"fieldId"`
	SlotsCreated int   `json:"slotsCreated"`
}

// ToUseCaseRequest converts the HTTP request into the usecase model,
// parsing dates and times
func (r *GenerateSlotsRequest) ToUseCaseRequest(userID, fieldID int64) (*generateSlots.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &generateSlots.Request{
		UserID:          userID,
		FieldID:         fieldID,
		StartDate:       startDate,
		EndDate:         endDate,
		StartTime:       startTime,
		EndTime:         endTime,
		DurationMinutes: r.DurationMinutes,
	}, nil
}
