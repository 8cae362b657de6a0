package staff_create_booking

import (
	"errors"
	"net/http"

	"github.com/xarena/XArena-BookingService/internal/api/handlers"
	"github.com/xarena/XArena-BookingService/internal/api/middleware"
	staffCreateBooking "github.com/xarena/XArena-BookingService/internal/usecase/staff_create_booking"
)

const (
	msgInvalidRequestBody = "body permintaan tidak valid"
	msgMissingUserID      = "ID pengguna tidak ditemukan"
	msgSlotNotFound       = "jadwal tidak ditemukan"
	msgSlotNotAvailable   = "jadwal sudah dipesan"
	msgFieldNotAvailable  = "lapangan sedang tidak tersedia"
	msgStaffNotFound      = "petugas tidak ditemukan"
	msgCustomerNotFound   = "pelanggan tidak ditemukan"
	msgNotACustomer       = "pemesanan hanya dapat dibuat atas nama pelanggan"
	msgForbidden          = "akses ditolak"
)

type Handler struct {
	useCase StaffCreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase StaffCreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/staff/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /staff/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req StaffCreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /staff/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(staffID))
	if err != nil {
		switch {
		case errors.Is(err, staffCreateBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /staff/bookings - Slot not available: staff_id=%d, slot_id=%d", staffID, req.SlotID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, staffCreateBooking.ErrSlotNotFound):
			h.logger.Warn("POST /staff/bookings - Slot not found: slot_id=%d", req.SlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, staffCreateBooking.ErrFieldNotAvailable):
			h.logger.Warn("POST /staff/bookings - Field not available: slot_id=%d", req.SlotID)
			handlers.RespondConflict(w, msgFieldNotAvailable)

		case errors.Is(err, staffCreateBooking.ErrStaffNotFound):
			h.logger.Warn("POST /staff/bookings - Staff not found: staff_id=%d", staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, staffCreateBooking.ErrCustomerNotFound):
			h.logger.Warn("POST /staff/bookings - Customer not found: customer_id=%d", req.CustomerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, staffCreateBooking.ErrNotACustomer):
			h.logger.Warn("POST /staff/bookings - Owner is not a customer: customer_id=%d", req.CustomerID)
			handlers.RespondBadRequest(w, msgNotACustomer)

		case errors.Is(err, staffCreateBooking.ErrPermissionDenied):
			h.logger.Warn("POST /staff/bookings - Permission denied: staff_id=%d", staffID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, staffCreateBooking.ErrInvalidInput):
			h.logger.Warn("POST /staff/bookings - Invalid input: staff_id=%d, error=%v", staffID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /staff/bookings - Failed to create booking: staff_id=%d, slot_id=%d, error=%v",
				staffID, req.SlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /staff/bookings - Booking created successfully: booking_id=%d, staff_id=%d, customer_id=%d",
		result.ID, staffID, req.CustomerID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
