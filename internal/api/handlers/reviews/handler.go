package reviews

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/xarena/XArena-BookingService/internal/api/handlers"
	"github.com/xarena/XArena-BookingService/internal/api/middleware"
	reviewsvc "github.com/xarena/XArena-BookingService/internal/service/reviews"
	"github.com/xarena/XArena-BookingService/internal/service/reviews/models"
)

const (
	msgInvalidFieldID     = "ID lapangan tidak valid"
	msgInvalidReviewID    = "ID ulasan tidak valid"
	msgInvalidRequestBody = "body permintaan tidak valid"
	msgMissingUserID      = "ID pengguna tidak ditemukan"
	msgFieldNotFound      = "lapangan tidak ditemukan"
	msgReviewNotFound     = "ulasan tidak ditemukan"
	msgAlreadyReviewed    = "Anda sudah memberikan ulasan untuk lapangan ini"
	msgInvalidRating      = "rating harus antara 1 dan 5"
	msgForbidden          = "akses ditolak"
)

// CreateReviewRequest is the HTTP request model
type CreateReviewRequest struct {
	Rating  int     `json:"rating" validate:"required,min=1,max=5"`
	Comment *string `json:"comment,omitempty"`
}

type Handler struct {
	service ReviewService
	logger  Logger
}

func NewHandler(service ReviewService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCreate POST /api/v1/fields/{fieldId}/reviews
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	fieldID, err := strconv.ParseInt(vars["fieldId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /fields/{id}/reviews - Invalid field ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFieldID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /fields/{id}/reviews - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /fields/{id}/reviews - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &models.CreateReviewRequest{
		UserID:  userID,
		FieldID: fieldID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		switch {
		case errors.Is(err, reviewsvc.ErrFieldNotFound):
			h.logger.Warn("POST /fields/{id}/reviews - Field not found: field_id=%d", fieldID)
			handlers.RespondNotFound(w, msgFieldNotFound)

		case errors.Is(err, reviewsvc.ErrAlreadyReviewed):
			h.logger.Warn("POST /fields/{id}/reviews - Already reviewed: user_id=%d, field_id=%d", userID, fieldID)
			handlers.RespondConflict(w, msgAlreadyReviewed)

		case errors.Is(err, reviewsvc.ErrInvalidRating):
			h.logger.Warn("POST /fields/{id}/reviews - Invalid rating: %d", req.Rating)
			handlers.RespondBadRequest(w, msgInvalidRating)

		case errors.Is(err, reviewsvc.ErrInvalidInput):
			h.logger.Warn("POST /fields/{id}/reviews - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, reviewsvc.ErrAccessDenied), errors.Is(err, reviewsvc.ErrUserNotFound):
			h.logger.Warn("POST /fields/{id}/reviews - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("POST /fields/{id}/reviews - Failed: field_id=%d, error=%v", fieldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /fields/{id}/reviews - Review created: review_id=%d, field_id=%d, user_id=%d",
		result.ID, fieldID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleList GET /api/v1/fields/{fieldId}/reviews
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	fieldID, err := strconv.ParseInt(vars["fieldId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /fields/{id}/reviews - Invalid field ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFieldID)
		return
	}

	result, err := h.service.ListByField(r.Context(), fieldID)
	if err != nil {
		if errors.Is(err, reviewsvc.ErrFieldNotFound) {
			h.logger.Warn("GET /fields/{id}/reviews - Field not found: field_id=%d", fieldID)
			handlers.RespondNotFound(w, msgFieldNotFound)
			return
		}
		h.logger.Error("GET /fields/{id}/reviews - Failed: field_id=%d, error=%v", fieldID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/reviews/{reviewId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reviewID, err := strconv.ParseInt(vars["reviewId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /reviews/{id} - Invalid review ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReviewID)
		return
	}

	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /reviews/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Delete(r.Context(), reviewID, actorID); err != nil {
		switch {
		case errors.Is(err, reviewsvc.ErrReviewNotFound):
			h.logger.Warn("DELETE /reviews/{id} - Review not found: review_id=%d", reviewID)
			handlers.RespondNotFound(w, msgReviewNotFound)

		case errors.Is(err, reviewsvc.ErrAccessDenied), errors.Is(err, reviewsvc.ErrUserNotFound):
			h.logger.Warn("DELETE /reviews/{id} - Access denied: user_id=%d", actorID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /reviews/{id} - Failed: review_id=%d, error=%v", reviewID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /reviews/{id} - Review deleted: review_id=%d, user_id=%d", reviewID, actorID)
	w.WriteHeader(http.StatusNoContent)
}
