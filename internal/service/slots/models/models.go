package models

import (
	"time"

	"github.com/xarena/XArena-BookingService/internal/domain"
)

// Request models

// UpdateSlotRequest asks to rewrite a slot's schedule or availability.
// Nil pointers leave the current value untouched.
type UpdateSlotRequest struct {
	ActorID     int64   `json:"actorId"`
	Date        *string `json:"date,omitempty"`      // "2024-06-01"
	StartTime   *string `json:"startTime,omitempty"` // "09:00"
	EndTime     *string `json:"endTime,omitempty"`   // "10:00"
	IsAvailable *bool   `json:"isAvailable,omitempty"`
}

// Response models

// SlotResponse is one slot
type SlotResponse struct {
	ID          int64     `json:"id"`
	FieldID     int64     `json:"fieldId"`
	Date        string    `json:"date"`
	StartTime   string    `json:"startTime"`
	EndTime     string    `json:"endTime"`
	IsAvailable bool      `json:"isAvailable"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// FromDomainSlot converts a slot into a response
func FromDomainSlot(slot *domain.Slot) *SlotResponse {
	return &SlotResponse{
		ID:          slot.ID,
		FieldID:     slot.FieldID,
		Date:        slot.Date.Format(domain.DateFormat),
		StartTime:   string(slot.StartTime),
		EndTime:     string(slot.EndTime),
		IsAvailable: slot.IsAvailable,
		CreatedAt:   slot.CreatedAt,
		UpdatedAt:   slot.UpdatedAt,
	}
}
