package staff_create_booking

import "errors"

var (
	// ErrSlotNotFound is returned when the requested slot does not exist
	ErrSlotNotFound = errors.New("staff_create_booking: slot not found")

	// ErrSlotNotAvailable is returned when the slot is already taken
	ErrSlotNotAvailable = errors.New("staff_create_booking: slot is not available")

	// ErrFieldNotAvailable is returned when the slot's field is closed for booking
	ErrFieldNotAvailable = errors.New("staff_create_booking: field is not available")

	// ErrStaffNotFound is returned when the acting staff member does not exist
	ErrStaffNotFound = errors.New("staff_create_booking: staff member not found")

	// ErrCustomerNotFound is returned when the walk-in customer does not exist
	ErrCustomerNotFound = errors.New("staff_create_booking: customer not found")

	// ErrNotACustomer is returned when the booking owner is not a customer account
	ErrNotACustomer = errors.New("staff_create_booking: booking owner must be a customer")

	// ErrPermissionDenied is returned when the acting user may not book on behalf of customers
	ErrPermissionDenied = errors.New("staff_create_booking: permission denied")

	// ErrInvalidInput is returned on malformed input data
	ErrInvalidInput = errors.New("staff_create_booking: invalid input data")

	// ErrInternal is returned on internal usecase errors
	ErrInternal = errors.New("staff_create_booking: internal error")
)
