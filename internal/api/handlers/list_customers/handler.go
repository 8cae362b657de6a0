package list_customers

import (
	"errors"
	"net/http"

	"github.com/xarena/XArena-BookingService/internal/api/handlers"
	"github.com/xarena/XArena-BookingService/internal/api/middleware"
	"github.com/xarena/XArena-BookingService/internal/service/users"
)

const (
	msgMissingUserID = "ID pengguna tidak ditemukan"
	msgForbidden     = "akses ditolak"
)

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/customers (staff desk customer picker)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /users/customers - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.ListCustomers(r.Context(), actorID)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrAccessDenied), errors.Is(err, users.ErrUserNotFound):
			h.logger.Warn("GET /users/customers - Access denied: user_id=%d", actorID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /users/customers - Failed: user_id=%d, error=%v", actorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/customers - Customers listed: user_id=%d, count=%d", actorID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
