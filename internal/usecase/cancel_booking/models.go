package cancel_booking

import "time"

// Request carries the input for cancelling a booking
type Request struct {
	UserID    int64 // ID of the acting customer
	BookingID int64 // ID of the booking to cancel
}

// Response describes the cancelled booking
type Response struct {
	ID        int64
	UserID    int64
	SlotID    int64
	Status    string
	UpdatedAt time.Time
}
