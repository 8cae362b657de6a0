package generate_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/xarena/XArena-BookingService/internal/api/handlers"
	"github.com/xarena/XArena-BookingService/internal/api/middleware"
	generateSlots "github.com/xarena/XArena-BookingService/internal/usecase/generate_slots"
)

const (
	msgInvalidFieldID     = "ID lapangan tidak valid"
	msgInvalidRequestBody = "body permintaan tidak valid"
	msgInvalidDateOrTime  = "format tanggal atau waktu tidak valid"
	msgMissingUserID      = "ID pengguna tidak ditemukan"
	msgFieldNotFound      = "lapangan tidak ditemukan"
	msgInvalidDuration    = "durasi minimal 30 menit dan harus kelipatan 30"
	msgInvalidDateRange   = "rentang tanggal tidak valid"
	msgInvalidTimeWindow  = "rentang waktu tidak valid"
	msgForbidden          = "akses ditolak"
)

type Handler struct {
	useCase GenerateSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GenerateSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/fields/{fieldId}/slots/generate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	fieldID, err := strconv.ParseInt(vars["fieldId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /fields/{id}/slots/generate - Invalid field ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFieldID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /fields/{id}/slots/generate - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req GenerateSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /fields/{id}/slots/generate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID, fieldID)
	if err != nil {
		h.logger.Warn("POST /fields/{id}/slots/generate - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, generateSlots.ErrFieldNotFound):
			h.logger.Warn("POST /fields/{id}/slots/generate - Field not found: field_id=%d", fieldID)
			handlers.RespondNotFound(w, msgFieldNotFound)

		case errors.Is(err, generateSlots.ErrInvalidDuration):
			h.logger.Warn("POST /fields/{id}/slots/generate - Invalid duration: %d", req.DurationMinutes)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, generateSlots.ErrInvalidDateRange):
			h.logger.Warn("POST /fields/{id}/slots/generate - Invalid date range: %s..%s", req.StartDate, req.EndDate)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, generateSlots.ErrInvalidTimeWindow):
			h.logger.Warn("POST /fields/{id}/slots/generate - Invalid time window: %s-%s", req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgInvalidTimeWindow)

		case errors.Is(err, generateSlots.ErrPermissionDenied), errors.Is(err, generateSlots.ErrUserNotFound):
			h.logger.Warn("POST /fields/{id}/slots/generate - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, generateSlots.ErrInvalidInput):
			h.logger.Warn("POST /fields/{id}/slots/generate - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /fields/{id}/slots/generate - Failed: field_id=%d, error=%v", fieldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /fields/{id}/slots/generate - Slots generated: field_id=%d, count=%d",
		fieldID, result.SlotsCreated)
	handlers.RespondJSON(w, http.StatusCreated, &GenerateSlotsResponse{
		FieldID:      result.FieldID,
		SlotsCreated: result.SlotsCreated,
	})
}
