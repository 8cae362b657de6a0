package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/xarena/XArena-BookingService/internal/api/handlers"
	"github.com/xarena/XArena-BookingService/internal/api/middleware"
	cancelBooking "github.com/xarena/XArena-BookingService/internal/usecase/cancel_booking"
)

const (
	msgInvalidBookingID = "ID pemesanan tidak valid"
	msgMissingUserID    = "ID pengguna tidak ditemukan"
	msgNotFound         = "pemesanan tidak ditemukan"
	msgNotOwner         = "pemesanan milik pengguna lain"
	msgNotCancellable   = "hanya pemesanan berstatus pending yang dapat dibatalkan"
	msgForbidden        = "akses ditolak"
)

type Handler struct {
	useCase CancelBookingUseCase
	logger  Logger
}

func NewHandler(useCase CancelBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/cancel - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id}/cancel - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &cancelBooking.Request{
		UserID:    userID,
		BookingID: bookingID,
	})
	if err != nil {
		switch {
		case errors.Is(err, cancelBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, cancelBooking.ErrNotOwner):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Not owner: booking_id=%d, user_id=%d", bookingID, userID)
			handlers.RespondForbidden(w, msgNotOwner)

		case errors.Is(err, cancelBooking.ErrNotCancellable):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Not cancellable: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgNotCancellable)

		case errors.Is(err, cancelBooking.ErrPermissionDenied):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Permission denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, cancelBooking.ErrUserNotFound):
			h.logger.Warn("PATCH /bookings/{id}/cancel - User not found: user_id=%d", userID)
			handlers.RespondUnauthorized(w, msgMissingUserID)

		case errors.Is(err, cancelBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		default:
			h.logger.Error("PATCH /bookings/{id}/cancel - Failed to cancel: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/cancel - Booking cancelled: booking_id=%d, user_id=%d", result.ID, userID)
	handlers.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"id":     result.ID,
		"slotId": result.SlotID,
		"status": result.Status,
	})
}
