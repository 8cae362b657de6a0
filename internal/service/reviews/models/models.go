package models

import (
	"time"

	"github.com/xarena/XArena-BookingService/internal/domain"
)

// Request models

// CreateReviewRequest asks to leave a review on a field
type CreateReviewRequest struct {
	UserID  int64   `json:"userId"`
	FieldID int64   `json:"fieldId"`
	Rating  int     `json:"rating"`
	Comment *string `json:"comment,omitempty"`
}

// Response models

// ReviewResponse is one review
type ReviewResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	FieldID   int64     `json:"fieldId"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReviewListResponse is a field's reviews
type ReviewListResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
	Total   int              `json:"total"`
}

// FromDomainReview converts a review into a response
func FromDomainReview(review *domain.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:        review.ID,
		UserID:    review.UserID,
		FieldID:   review.FieldID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
		UpdatedAt: review.UpdatedAt,
	}
}

// FromDomainReviewList converts a review list into a response
func FromDomainReviewList(reviews []*domain.Review) *ReviewListResponse {
	responses := make([]ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		responses = append(responses, *FromDomainReview(review))
	}
	return &ReviewListResponse{
		Reviews: responses,
		Total:   len(responses),
	}
}
