package reviews

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xarena/XArena-BookingService/internal/domain"
	fieldStorage "github.com/xarena/XArena-BookingService/internal/infra/storage/field"
	userStorage "github.com/xarena/XArena-BookingService/internal/infra/storage/user"
	"github.com/xarena/XArena-BookingService/internal/service/reviews/models"
	"github.com/xarena/XArena-BookingService/pkg/ptr"
)

type mockReviewRepo struct {
	existing  bool
	created   *domain.Review
	deleted   []int64
	deleteErr error
}

func (m *mockReviewRepo) Create(_ context.Context, review *domain.Review) (*domain.Review, error) {
	review.ID = 1
	review.CreatedAt = time.Now()
	review.UpdatedAt = review.CreatedAt
	m.created = review
	return review, nil
}

func (m *mockReviewRepo) ExistsByUserAndField(_ context.Context, userID, fieldID int64) (bool, error) {
	return m.existing, nil
}

func (m *mockReviewRepo) ListByField(_ context.Context, fieldID int64) ([]*domain.Review, error) {
	if m.created != nil {
		return []*domain.Review{m.created}, nil
	}
	return nil, nil
}

func (m *mockReviewRepo) Delete(_ context.Context, id int64) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, id)
	return nil
}

type mockFieldRepo struct {
	err error
}

func (m *mockFieldRepo) GetByID(_ context.Context, id int64) (*domain.Field, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Field{ID: id, Name: "Lapangan Futsal A"}, nil
}

type mockUserRepo struct {
	users map[int64]*domain.User
}

func (m *mockUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, userStorage.ErrUserNotFound
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService(reviewRepo *mockReviewRepo, fieldRepo *mockFieldRepo) *Service {
	return NewService(reviewRepo, fieldRepo, &mockUserRepo{users: map[int64]*domain.User{
		5: {ID: 5, Role: domain.RoleCustomer},
		2: {ID: 2, Role: domain.RoleStaff},
		1: {ID: 1, Role: domain.RoleAdmin},
	}}, nopLogger{})
}

func TestCreateSuccess(t *testing.T) {
	reviewRepo := &mockReviewRepo{}
	svc := newService(reviewRepo, &mockFieldRepo{})

	resp, err := svc.Create(context.Background(), &models.CreateReviewRequest{
		UserID:  5,
		FieldID: 3,
		Rating:  4,
		Comment: ptr.Ptr("Lapangan bagus"),
	})

	require.NoError(t, err)
	assert.Equal(t, 4, resp.Rating)
	require.NotNil(t, reviewRepo.created)
	assert.Equal(t, int64(5), reviewRepo.created.UserID)
}

func TestCreateAlreadyReviewed(t *testing.T) {
	reviewRepo := &mockReviewRepo{existing: true}
	svc := newService(reviewRepo, &mockFieldRepo{})

	_, err := svc.Create(context.Background(), &models.CreateReviewRequest{
		UserID:  5,
		FieldID: 3,
		Rating:  4,
	})

	assert.ErrorIs(t, err, ErrAlreadyReviewed)
	assert.Nil(t, reviewRepo.created)
}

func TestCreateInvalidRating(t *testing.T) {
	svc := newService(&mockReviewRepo{}, &mockFieldRepo{})

	for _, rating := range []int{0, -1, 6, 100} {
		_, err := svc.Create(context.Background(), &models.CreateReviewRequest{
			UserID:  5,
			FieldID: 3,
			Rating:  rating,
		})
		assert.ErrorIs(t, err, ErrInvalidRating, "rating %d", rating)
	}
}

func TestCreateFieldNotFound(t *testing.T) {
	svc := newService(&mockReviewRepo{}, &mockFieldRepo{err: fieldStorage.ErrFieldNotFound})

	_, err := svc.Create(context.Background(), &models.CreateReviewRequest{
		UserID:  5,
		FieldID: 404,
		Rating:  4,
	})

	assert.ErrorIs(t, err, ErrFieldNotFound)
}

func TestCreateAccessDenied(t *testing.T) {
	svc := newService(&mockReviewRepo{}, &mockFieldRepo{})

	// Staff and admin accounts do not leave reviews.
	for _, actor := range []int64{2, 1} {
		_, err := svc.Create(context.Background(), &models.CreateReviewRequest{
			UserID:  actor,
			FieldID: 3,
			Rating:  4,
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	}
}

func TestDeleteStaffOnly(t *testing.T) {
	reviewRepo := &mockReviewRepo{}
	svc := newService(reviewRepo, &mockFieldRepo{})

	err := svc.Delete(context.Background(), 7, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{7}, reviewRepo.deleted)

	err = svc.Delete(context.Background(), 7, 5)
	assert.ErrorIs(t, err, ErrAccessDenied)
}
