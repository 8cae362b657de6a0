package fields

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xarena/XArena-BookingService/internal/domain"
	fieldStorage "github.com/xarena/XArena-BookingService/internal/infra/storage/field"
	userStorage "github.com/xarena/XArena-BookingService/internal/infra/storage/user"
	"github.com/xarena/XArena-BookingService/internal/service/fields/models"
)

type mockFieldRepo struct {
	field       *domain.Field
	getErr      error
	updatedID   int64
	updatedWith *domain.Field
}

func (m *mockFieldRepo) Create(_ context.Context, field *domain.Field) (*domain.Field, error) {
	created := *field
	created.ID = 3
	return &created, nil
}

func (m *mockFieldRepo) GetByID(_ context.Context, id int64) (*domain.Field, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.field, nil
}

func (m *mockFieldRepo) List(_ context.Context) ([]*domain.Field, error) {
	return []*domain.Field{m.field}, nil
}

func (m *mockFieldRepo) Update(_ context.Context, id int64, field *domain.Field) (*domain.Field, error) {
	m.updatedID = id
	m.updatedWith = field
	return field, nil
}

func (m *mockFieldRepo) Delete(_ context.Context, id int64) error {
	if m.getErr != nil {
		return m.getErr
	}
	return nil
}

type mockReviewRepo struct {
	avg   float64
	count int
}

func (m *mockReviewRepo) AverageRating(_ context.Context, fieldID int64) (float64, int, error) {
	return m.avg, m.count, nil
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

func testField() *domain.Field {
	return &domain.Field{
		ID:          3,
		Name:        "Lapangan Futsal A",
		HourlyRate:  decimal.RequireFromString("100000"),
		IsAvailable: true,
	}
}

func newService(fieldRepo *mockFieldRepo) *Service {
	users := map[int64]*domain.User{
		1: {ID: 1, Role: domain.RoleAdmin},
		2: {ID: 2, Role: domain.RoleStaff},
		5: {ID: 5, Role: domain.RoleCustomer},
	}
	return NewService(fieldRepo, &mockReviewRepo{avg: 4.5, count: 2},
		&mockUserRepo{users: users}, nopLogger{})
}

func TestCreateFieldSuccess(t *testing.T) {
	svc := newService(&mockFieldRepo{field: testField()})

	result, err := svc.Create(context.Background(), &models.CreateFieldRequest{
		ActorID:    1,
		Name:       "Lapangan Badminton B",
		HourlyRate: decimal.RequireFromString("80000"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Lapangan Badminton B", result.Name)
	assert.True(t, result.IsAvailable)
}

func TestCreateFieldOnlyAdmin(t *testing.T) {
	svc := newService(&mockFieldRepo{field: testField()})

	for _, actorID := range []int64{2, 5} {
		_, err := svc.Create(context.Background(), &models.CreateFieldRequest{
			ActorID:    actorID,
			Name:       "Lapangan C",
			HourlyRate: decimal.RequireFromString("80000"),
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	}
}

func TestCreateFieldValidation(t *testing.T) {
	svc := newService(&mockFieldRepo{field: testField()})

	tests := []struct {
		name string
		req  models.CreateFieldRequest
	}{
		{name: "empty name", req: models.CreateFieldRequest{ActorID: 1, Name: "  ", HourlyRate: decimal.RequireFromString("1")}},
		{name: "name too long", req: models.CreateFieldRequest{ActorID: 1, Name: strings.Repeat("a", domain.MaxFieldNameLength+1), HourlyRate: decimal.RequireFromString("1")}},
		{name: "negative rate", req: models.CreateFieldRequest{ActorID: 1, Name: "Lapangan", HourlyRate: decimal.RequireFromString("-1")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpdateFieldPassesID(t *testing.T) {
	repo := &mockFieldRepo{field: testField()}
	svc := newService(repo)

	newRate := decimal.RequireFromString("120000")
	result, err := svc.Update(context.Background(), 3, &models.UpdateFieldRequest{
		ActorID:    1,
		HourlyRate: &newRate,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3), repo.updatedID)
	assert.True(t, repo.updatedWith.HourlyRate.Equal(newRate))
	assert.True(t, result.HourlyRate.Equal(newRate))
}

func TestUpdateFieldNotFound(t *testing.T) {
	svc := newService(&mockFieldRepo{getErr: fieldStorage.ErrFieldNotFound})

	name := "Lapangan"
	_, err := svc.Update(context.Background(), 99, &models.UpdateFieldRequest{
		ActorID: 1,
		Name:    &name,
	})

	assert.ErrorIs(t, err, ErrFieldNotFound)
}

func TestGetFieldCarriesRating(t *testing.T) {
	svc := newService(&mockFieldRepo{field: testField()})

	result, err := svc.GetByID(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, 4.5, result.AverageRating)
	assert.Equal(t, 2, result.ReviewCount)
}

func TestDeleteFieldOnlyAdmin(t *testing.T) {
	svc := newService(&mockFieldRepo{field: testField()})

	assert.ErrorIs(t, svc.Delete(context.Background(), 3, 5), ErrAccessDenied)
	assert.NoError(t, svc.Delete(context.Background(), 3, 1))
}
