package get_available_slots

import (
	"github.com/shopspring/decimal"

	"github.com/xarena/XArena-BookingService/internal/domain"
	getAvailableSlots "github.com/xarena/XArena-BookingService/internal/usecase/get_available_slots"
)

// SlotResponse is one free slot in the HTTP response
type SlotResponse struct {
	ID        int64           `json:"id"`
	FieldID   int64           `json:"fieldId"`
	Date      string          `json:"date"`
	StartTime string          `json:"startTime"`
	EndTime   string          `json:"endTime"`
	Price     decimal.Decimal `json:"price"`
}

// AvailableSlotsResponse is the HTTP response model
type AvailableSlotsResponse struct {
	FieldID   int64          `json:"fieldId"`
	FieldName string         `json:"fieldName"`
	Slots     []SlotResponse `json:"slots"`
	Total     int            `json:"total"`
}

// FromUseCaseResponse converts the usecase response into the HTTP model
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			ID:        s.ID,
			FieldID:   s.FieldID,
			Date:      s.Date.Format(domain.DateFormat),
			StartTime: string(s.StartTime),
			EndTime:   string(s.EndTime),
			Price:     s.Price,
		})
	}

	return &AvailableSlotsResponse{
		FieldID:   resp.FieldID,
		FieldName: resp.FieldName,
		Slots:     slots,
		Total:     len(slots),
	}
}
