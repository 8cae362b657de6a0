package domain

import "time"

// Review is a customer's 1-5 rating of a field with an optional comment.
// At most one review per (user, field) pair; the write path enforces it
// with an existence check.
type Review struct {
	ID      int64
	UserID  int64
	FieldID int64
	Rating  int
	Comment *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidRating reports whether r is inside the allowed 1-5 range
func ValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}
