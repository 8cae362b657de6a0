package reviews

import "errors"

var (
	// ErrReviewNotFound is returned when the review does not exist
	ErrReviewNotFound = errors.New("review not found")

	// ErrFieldNotFound is returned when the reviewed field does not exist
	ErrFieldNotFound = errors.New("field not found")

	// ErrUserNotFound is returned when the acting user does not exist
	ErrUserNotFound = errors.New("user not found")

	// ErrAlreadyReviewed is returned when the user already reviewed the field
	ErrAlreadyReviewed = errors.New("field already reviewed by this user")

	// ErrInvalidRating is returned when the rating is outside 1..5
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	// ErrAccessDenied is returned when the user may not perform the action
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput is returned on malformed input data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("service: internal error")
)
