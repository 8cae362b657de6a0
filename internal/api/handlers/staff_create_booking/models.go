package staff_create_booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/xarena/XArena-BookingService/internal/domain"
	staffCreateBooking "github.com/xarena/XArena-BookingService/internal/usecase/staff_create_booking"
)

// StaffCreateBookingRequest is the HTTP request model
type StaffCreateBookingRequest struct {
	CustomerID    int64  `json:"customerId" validate:"required,gt=0"`
	SlotID        int64  `json:"slotId" validate:"required,gt=0"`
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=transfer cash"`
}

// BookingResponse is the HTTP response model
type BookingResponse struct {
	ID            int64           `json:"id"`
	UserID        int64           `json:"userId"`
	StaffID       *int64          `json:"staffId,omitempty"`
	SlotID        int64           `json:"slotId"`
	FieldID       int64           `json:"fieldId"`
	Date          string          `json:"date"`
	StartTime     string          `json:"startTime"`
	EndTime       string          `json:"endTime"`
	PaymentMethod string          `json:"paymentMethod"`
	Status        string          `json:"status"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
	CreatedAt     string          `json:"createdAt"`
	UpdatedAt     string          `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request into the usecase model
func (r *StaffCreateBookingRequest) ToUseCaseRequest(staffID int64) *staffCreateBooking.Request {
	return &staffCreateBooking.Request{
		StaffID:       staffID,
		CustomerID:    r.CustomerID,
		SlotID:        r.SlotID,
		PaymentMethod: domain.PaymentMethod(r.PaymentMethod),
	}
}

// FromUseCaseResponse converts the usecase response into the HTTP model
func FromUseCaseResponse(resp *staffCreateBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		UserID:        resp.UserID,
		StaffID:       resp.StaffID,
		SlotID:        resp.SlotID,
		FieldID:       resp.FieldID,
		Date:          resp.Date.Format(domain.DateFormat),
		StartTime:     string(resp.StartTime),
		EndTime:       string(resp.EndTime),
		PaymentMethod: resp.PaymentMethod,
		Status:        resp.Status,
		TotalPrice:    resp.TotalPrice,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
