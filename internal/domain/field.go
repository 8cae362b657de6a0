package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Field represents a bookable sports field (lapangan)
type Field struct {
	ID          int64
	Name        string
	Description string
	// HourlyRate is the price per hour in IDR, kept as an exact decimal.
	// Money never goes through float64.
	HourlyRate  decimal.Decimal
	IsAvailable bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FieldWithRating is a field decorated with its derived review aggregate.
// The rating is recomputed on read, never stored.
type FieldWithRating struct {
	Field
	AverageRating float64
	ReviewCount   int
}
