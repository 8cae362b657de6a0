package manage_fields

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/xarena/XArena-BookingService/internal/api/handlers"
	"github.com/xarena/XArena-BookingService/internal/api/middleware"
	"github.com/xarena/XArena-BookingService/internal/service/fields"
)

const (
	msgInvalidFieldID     = "ID lapangan tidak valid"
	msgInvalidRequestBody = "body permintaan tidak valid"
	msgMissingUserID      = "ID pengguna tidak ditemukan"
	msgNotFound           = "lapangan tidak ditemukan"
	msgForbidden          = "akses ditolak"
)

type Handler struct {
	service FieldService
	logger  Logger
}

func NewHandler(service FieldService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/fields
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /fields - Failed to list fields: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleGet GET /api/v1/fields/{fieldId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	fieldID, err := strconv.ParseInt(vars["fieldId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /fields/{id} - Invalid field ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFieldID)
		return
	}

	result, err := h.service.GetByID(r.Context(), fieldID)
	if err != nil {
		if errors.Is(err, fields.ErrFieldNotFound) {
			h.logger.Warn("GET /fields/{id} - Field not found: field_id=%d", fieldID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /fields/{id} - Failed: field_id=%d, error=%v", fieldID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleCreate POST /api/v1/fields
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /fields - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateFieldRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /fields - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest(actorID))
	if err != nil {
		switch {
		case errors.Is(err, fields.ErrAccessDenied), errors.Is(err, fields.ErrUserNotFound):
			h.logger.Warn("POST /fields - Access denied: user_id=%d", actorID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, fields.ErrInvalidInput):
			h.logger.Warn("POST /fields - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /fields - Failed: user_id=%d, error=%v", actorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /fields - Field created: field_id=%d, user_id=%d", result.ID, actorID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleUpdate PUT /api/v1/fields/{fieldId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	fieldID, err := strconv.ParseInt(vars["fieldId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /fields/{id} - Invalid field ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFieldID)
		return
	}

	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /fields/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateFieldRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /fields/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), fieldID, req.ToServiceRequest(actorID))
	if err != nil {
		switch {
		case errors.Is(err, fields.ErrFieldNotFound):
			h.logger.Warn("PUT /fields/{id} - Field not found: field_id=%d", fieldID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, fields.ErrAccessDenied), errors.Is(err, fields.ErrUserNotFound):
			h.logger.Warn("PUT /fields/{id} - Access denied: user_id=%d", actorID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, fields.ErrInvalidInput):
			h.logger.Warn("PUT /fields/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /fields/{id} - Failed: field_id=%d, error=%v", fieldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /fields/{id} - Field updated: field_id=%d, user_id=%d", fieldID, actorID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/fields/{fieldId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	fieldID, err := strconv.ParseInt(vars["fieldId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /fields/{id} - Invalid field ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFieldID)
		return
	}

	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /fields/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Delete(r.Context(), fieldID, actorID); err != nil {
		switch {
		case errors.Is(err, fields.ErrFieldNotFound):
			h.logger.Warn("DELETE /fields/{id} - Field not found: field_id=%d", fieldID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, fields.ErrAccessDenied), errors.Is(err, fields.ErrUserNotFound):
			h.logger.Warn("DELETE /fields/{id} - Access denied: user_id=%d", actorID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /fields/{id} - Failed: field_id=%d, error=%v", fieldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /fields/{id} - Field deleted: field_id=%d, user_id=%d", fieldID, actorID)
	w.WriteHeader(http.StatusNoContent)
}
