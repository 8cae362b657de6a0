package review

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/xarena/XArena-BookingService/internal/domain"
	"github.com/xarena/XArena-BookingService/pkg/dbmetrics"
	"github.com/xarena/XArena-BookingService/pkg/psqlbuilder"
)

// Repository provides access to field reviews
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a review repository
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a review
func (r *Repository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reviews").
		Columns("user_id", "field_id", "rating", "comment").
		Values(review.UserID, review.FieldID, review.Rating, review.Comment).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&review.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	review.CreatedAt = createdAt.Time
	review.UpdatedAt = updatedAt.Time

	return review, nil
}

// ExistsByUserAndField reports whether the user already reviewed the field
func (r *Repository) ExistsByUserAndField(ctx context.Context, userID, fieldID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("reviews").
		Where(squirrel.Eq{"user_id": userID, "field_id": fieldID}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsByUserAndField - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsByUserAndField - scan row: %v", ErrScanRow, err)
	}

	return true, nil
}

// ListByField returns a field's reviews, newest first
func (r *Repository) ListByField(ctx context.Context, fieldID int64) ([]*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"user_id",
		"field_id",
		"rating",
		"comment",
		"created_at",
		"updated_at",
	).
		From("reviews").
		Where(squirrel.Eq{"field_id": fieldID}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByField - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByField - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reviews := make([]*domain.Review, 0)

	for rows.Next() {
		var review domain.Review
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&review.ID,
			&review.UserID,
			&review.FieldID,
			&review.Rating,
			&review.Comment,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByField - scan row: %v", ErrScanRow, err)
		}

		review.CreatedAt = createdAt.Time
		review.UpdatedAt = updatedAt.Time
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByField - rows error: %v", ErrScanRow, err)
	}

	return reviews, nil
}

// AverageRating returns the field's mean rating and review count.
// A field without reviews averages to zero.
func (r *Repository) AverageRating(ctx context.Context, fieldID int64) (float64, int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(AVG(rating), 0)", "COUNT(*)").
		From("reviews").
		Where(squirrel.Eq{"field_id": fieldID}).
		ToSql()

	if err != nil {
		return 0, 0, fmt.Errorf("%w: AverageRating - build select query: %v", ErrBuildQuery, err)
	}

	var avg float64
	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&avg, &count); err != nil {
		return 0, 0, fmt.Errorf("%w: AverageRating - scan row: %v", ErrScanRow, err)
	}

	return avg, count, nil
}

// Delete removes a review
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reviews").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReviewNotFound
	}

	return nil
}
