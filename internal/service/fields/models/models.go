package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/xarena/XArena-BookingService/internal/domain"
)

// Request models

// CreateFieldRequest asks to add a field to the catalog
type CreateFieldRequest struct {
	ActorID     int64           `json:"actorId"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	HourlyRate  decimal.Decimal `json:"hourlyRate"`
	IsAvailable *bool           `json:"isAvailable,omitempty"`
}

// UpdateFieldRequest asks to change a field. Nil pointers leave the
// current value untouched.
type UpdateFieldRequest struct {
	ActorID     int64            `json:"actorId"`
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	HourlyRate  *decimal.Decimal `json:"hourlyRate,omitempty"`
	IsAvailable *bool            `json:"isAvailable,omitempty"`
}

// Response models

// FieldResponse is one catalog entry with its derived review aggregate
type FieldResponse struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	HourlyRate    decimal.Decimal `json:"hourlyRate"`
	IsAvailable   bool            `json:"isAvailable"`
	AverageRating float64         `json:"averageRating"`
	ReviewCount   int             `json:"reviewCount"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// FieldListResponse is the catalog listing
type FieldListResponse struct {
	Fields []FieldResponse `json:"fields"`
	Total  int             `json:"total"`
}

// FromDomainField converts a decorated field into a response
func FromDomainField(field *domain.FieldWithRating) *FieldResponse {
	return &FieldResponse{
		ID:            field.ID,
		Name:          field.Name,
		Description:   field.Description,
		HourlyRate:    field.HourlyRate,
		IsAvailable:   field.IsAvailable,
		AverageRating: field.AverageRating,
		ReviewCount:   field.ReviewCount,
		CreatedAt:     field.CreatedAt,
		UpdatedAt:     field.UpdatedAt,
	}
}
