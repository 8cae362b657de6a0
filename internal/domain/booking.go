package domain

import "time"

// BookingStatus represents the status of a booking. The values are the
// platform's Indonesian status vocabulary and are stored as-is.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusAccepted  BookingStatus = "diterima"
	StatusCompleted BookingStatus = "selesai"
	StatusCancelled BookingStatus = "dibatalkan"
)

// PaymentMethod is how a booking will be paid
type PaymentMethod string

const (
	PaymentTransfer PaymentMethod = "transfer"
	PaymentCash     PaymentMethod = "cash"
)

// Booking represents a customer's reservation of one slot
type Booking struct {
	ID     int64
	UserID int64
	// StaffID is set only when a staff member created the booking or
	// last updated its status.
	StaffID       *int64
	SlotID        int64
	PaymentMethod PaymentMethod
	Status        BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true while the booking keeps its slot occupied
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelledByCustomer returns true when the owner may still cancel.
// Customers may only cancel a booking that is exactly pending; once staff
// accept it, the customer path is closed. Staff corrections go through
// the separate status-update path, which is intentionally more permissive.
func (b *Booking) CanBeCancelledByCustomer() bool {
	return b.Status == StatusPending
}

// ValidBookingStatus reports whether s is one of the four known statuses
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case StatusPending, StatusAccepted, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ValidPaymentMethod reports whether m is a known payment method
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentTransfer, PaymentCash:
		return true
	}
	return false
}

// BookingsFilter narrows booking listings for the staff views
type BookingsFilter struct {
	FieldID          *int64
	UserID           *int64
	Date             *time.Time
	Status           *BookingStatus
	IncludeCancelled bool
}
