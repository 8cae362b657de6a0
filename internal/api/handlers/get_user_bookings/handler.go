package get_user_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/xarena/XArena-BookingService/internal/api/handlers"
	"github.com/xarena/XArena-BookingService/internal/api/middleware"
	"github.com/xarena/XArena-BookingService/internal/service/bookings"
	"github.com/xarena/XArena-BookingService/internal/service/bookings/models"
)

const (
	msgMissingUserID = "ID pengguna tidak ditemukan"
	msgInvalidUserID = "ID pengguna tidak valid"
	msgInvalidStatus = "status pemesanan tidak valid"
	msgForbidden     = "akses ditolak"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings (authenticated user's own history)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	h.respondHistory(w, r, userID, userID, "GET /bookings")
}

// HandleForUser GET /api/v1/users/{userId}/bookings (staff view of any history)
func (h *Handler) HandleForUser(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	targetID, err := strconv.ParseInt(vars["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /users/{id}/bookings - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	h.respondHistory(w, r, actorID, targetID, "GET /users/{id}/bookings")
}

func (h *Handler) respondHistory(w http.ResponseWriter, r *http.Request, actorID, targetID int64, route string) {
	var statusPtr *string
	if status := r.URL.Query().Get("status"); status != "" {
		statusPtr = &status
	}

	result, err := h.service.GetUserBookings(r.Context(), &models.GetUserBookingsRequest{
		ActorID: actorID,
		UserID:  targetID,
		Status:  statusPtr,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("%s - Invalid status filter: user_id=%d", route, targetID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, bookings.ErrAccessDenied), errors.Is(err, bookings.ErrUserNotFound):
			h.logger.Warn("%s - Access denied: actor_id=%d, user_id=%d", route, actorID, targetID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("%s - Failed to get bookings: user_id=%d, error=%v", route, targetID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Bookings retrieved: user_id=%d, count=%d", route, targetID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
