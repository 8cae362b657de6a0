package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/xarena/XArena-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus is returned on an unknown status string
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request models

// GetUserBookingsRequest asks for one user's booking history.
// ActorID identifies the requester; viewing someone else's history
// takes staff access.
type GetUserBookingsRequest struct {
	ActorID int64   `json:"actorId"`
	UserID  int64   `json:"userId"`
	Status  *string `json:"status,omitempty"`
}

// GetFieldBookingsRequest asks for a field's bookings with filtering.
// ActorID identifies the staff member making the request.
type GetFieldBookingsRequest struct {
	ActorID          int64      `json:"actorId"`
	FieldID          int64      `json:"fieldId"`
	Date             *time.Time `json:"date,omitempty"`
	Status           *string    `json:"status,omitempty"`
	IncludeCancelled bool       `json:"includeCancelled,omitempty"`
}

// UpdateStatusRequest asks to move a booking to a new status
type UpdateStatusRequest struct {
	ActorID int64  `json:"actorId"`
	Status  string `json:"status"`
}

// ToDomainFilter converts the request into a storage filter
func (r *GetFieldBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		FieldID:          &r.FieldID,
		Date:             r.Date,
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response models

// BookingResponse is one booking with its slot context and the price
// derived from the field's current rate
type BookingResponse struct {
	ID            int64           `json:"id"`
	UserID        int64           `json:"userId"`
	StaffID       *int64          `json:"staffId,omitempty"`
	SlotID        int64           `json:"slotId"`
	FieldID       int64           `json:"fieldId"`
	FieldName     string          `json:"fieldName"`
	Date          string          `json:"date"`      // "2024-06-01"
	StartTime     string          `json:"startTime"` // "09:00"
	EndTime       string          `json:"endTime"`   // "10:30"
	PaymentMethod string          `json:"paymentMethod"`
	Status        string          `json:"status"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// BookingListResponse is a list of bookings
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// FromDomainBooking assembles a response from the booking and its
// slot/field context
func FromDomainBooking(booking *domain.Booking, slot *domain.Slot, field *domain.Field, price decimal.Decimal) *BookingResponse {
	return &BookingResponse{
		ID:            booking.ID,
		UserID:        booking.UserID,
		StaffID:       booking.StaffID,
		SlotID:        booking.SlotID,
		FieldID:       field.ID,
		FieldName:     field.Name,
		Date:          slot.Date.Format(domain.DateFormat),
		StartTime:     string(slot.StartTime),
		EndTime:       string(slot.EndTime),
		PaymentMethod: string(booking.PaymentMethod),
		Status:        string(booking.Status),
		TotalPrice:    price,
		CreatedAt:     booking.CreatedAt,
		UpdatedAt:     booking.UpdatedAt,
	}
}

// ToDomainBookingStatus validates and converts a status string
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !domain.ValidBookingStatus(s) {
		return "", ErrInvalidStatus
	}
	return s, nil
}
