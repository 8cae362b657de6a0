package manage_fields

import (
	"github.com/shopspring/decimal"

	"github.com/xarena/XArena-BookingService/internal/service/fields/models"
)

// CreateFieldRequest is the HTTP request model
type CreateFieldRequest struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	HourlyRate  decimal.Decimal `json:"hourlyRate" validate:"required"`
	IsAvailable *bool           `json:"isAvailable,omitempty"`
}

// ToServiceRequest converts the HTTP request into the service model
func (r *CreateFieldRequest) ToServiceRequest(actorID int64) *models.CreateFieldRequest {
	return &models.CreateFieldRequest{
		ActorID:     actorID,
		Name:        r.Name,
		Description: r.Description,
		HourlyRate:  r.HourlyRate,
		IsAvailable: r.IsAvailable,
	}
}

// UpdateFieldRequest is the HTTP request model. Omitted fields keep
// their current value.
type UpdateFieldRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	HourlyRate  *decimal.Decimal `json:"hourlyRate,omitempty"`
	IsAvailable *bool            `json:"isAvailable,omitempty"`
}

// ToServiceRequest converts the HTTP request into the service model
func (r *UpdateFieldRequest) ToServiceRequest(actorID int64) *models.UpdateFieldRequest {
	return &models.UpdateFieldRequest{
		ActorID:     actorID,
		Name:        r.Name,
		Description: r.Description,
		HourlyRate:  r.HourlyRate,
		IsAvailable: r.IsAvailable,
	}
}
