package generate_slots

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xarena/XArena-BookingService/internal/domain"
	fieldStorage "github.com/xarena/XArena-BookingService/internal/infra/storage/field"
	"github.com/xarena/XArena-BookingService/pkg/types"
)

type mockSlotRepo struct {
	created []*domain.Slot
	err     error
}

func (m *mockSlotRepo) Create(_ context.Context, slot *domain.Slot) (*domain.Slot, error) {
	if m.err != nil {
		return nil, m.err
	}
	slot.ID = int64(len(m.created) + 1)
	m.created = append(m.created, slot)
	return slot, nil
}

type mockFieldRepo struct {
	field *domain.Field
	err   error
}

func (m *mockFieldRepo) GetByID(_ context.Context, id int64) (*domain.Field, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.field, nil
}

type mockUserRepo struct {
	user *domain.User
	err  error
}

func (m *mockUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.user, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func admin() *domain.User {
	return &domain.User{ID: 1, Role: domain.RoleAdmin}
}

func field() *domain.Field {
	return &domain.Field{ID: 3, Name: "Lapangan Futsal A", HourlyRate: decimal.RequireFromString("100000"), IsAvailable: true}
}

func newUseCase(slotRepo *mockSlotRepo) *UseCase {
	return NewUseCase(slotRepo, &mockFieldRepo{field: field()}, &mockUserRepo{user: admin()}, nopLogger{})
}

func TestExecuteSingleDay(t *testing.T) {
	slotRepo := &mockSlotRepo{}
	uc := newUseCase(slotRepo)

	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{
		UserID:          1,
		FieldID:         3,
		StartDate:       date,
		EndDate:         date,
		StartTime:       types.TimeString("08:00"),
		EndTime:         types.TimeString("10:00"),
		DurationMinutes: 60,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.SlotsCreated)
	require.Len(t, slotRepo.created, 2)

	assert.Equal(t, types.TimeString("08:00"), slotRepo.created[0].StartTime)
	assert.Equal(t, types.TimeString("09:00"), slotRepo.created[0].EndTime)
	assert.Equal(t, types.TimeString("09:00"), slotRepo.created[1].StartTime)
	assert.Equal(t, types.TimeString("10:00"), slotRepo.created[1].EndTime)

	for _, s := range slotRepo.created {
		assert.True(t, s.IsAvailable)
		assert.Equal(t, int64(3), s.FieldID)
		assert.Equal(t, date, s.Date)
	}
}

func TestExecuteDropsTrailingRemainder(t *testing.T) {
	// 08:00-09:45 at 30-minute slots leaves a 15-minute tail that is
	// never emitted.
	slotRepo := &mockSlotRepo{}
	uc := newUseCase(slotRepo)

	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{
		UserID:          1,
		FieldID:         3,
		StartDate:       date,
		EndDate:         date,
		StartTime:       types.TimeString("08:00"),
		EndTime:         types.TimeString("09:45"),
		DurationMinutes: 30,
	})

	require.NoError(t, err)
	assert.Equal(t, 3, resp.SlotsCreated)
	assert.Equal(t, types.TimeString("09:30"), slotRepo.created[2].EndTime)
}

func TestExecuteMultipleDays(t *testing.T) {
	slotRepo := &mockSlotRepo{}
	uc := newUseCase(slotRepo)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:          1,
		FieldID:         3,
		StartDate:       time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		StartTime:       types.TimeString("08:00"),
		EndTime:         types.TimeString("12:00"),
		DurationMinutes: 90,
	})

	require.NoError(t, err)
	// Two 90-minute slots fit into a four-hour window, three days.
	assert.Equal(t, 6, resp.SlotsCreated)
}

func TestExecuteWindowUpToMidnight(t *testing.T) {
	slotRepo := &mockSlotRepo{}
	uc := newUseCase(slotRepo)

	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{
		UserID:          1,
		FieldID:         3,
		StartDate:       date,
		EndDate:         date,
		StartTime:       types.TimeString("22:00"),
		EndTime:         types.TimeString("23:30"),
		DurationMinutes: 60,
	})

	require.NoError(t, err)
	// Only 22:00-23:00 fits; 23:00-24:00 would overrun the window.
	assert.Equal(t, 1, resp.SlotsCreated)
}

func TestExecuteInvalidDuration(t *testing.T) {
	uc := newUseCase(&mockSlotRepo{})

	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	base := Request{
		UserID:    1,
		FieldID:   3,
		StartDate: date,
		EndDate:   date,
		StartTime: types.TimeString("08:00"),
		EndTime:   types.TimeString("12:00"),
	}

	tests := []struct {
		name     string
		duration int
	}{
		{name: "below minimum", duration: 15},
		{name: "not a step multiple", duration: 45},
		{name: "zero", duration: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base
			req.DurationMinutes = tt.duration
			_, err := uc.Execute(context.Background(), &req)
			assert.ErrorIs(t, err, ErrInvalidDuration)
		})
	}
}

func TestExecuteInvalidDateRange(t *testing.T) {
	uc := newUseCase(&mockSlotRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:          1,
		FieldID:         3,
		StartDate:       time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		StartTime:       types.TimeString("08:00"),
		EndTime:         types.TimeString("12:00"),
		DurationMinutes: 60,
	})

	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestExecuteFieldNotFound(t *testing.T) {
	uc := NewUseCase(&mockSlotRepo{}, &mockFieldRepo{err: fieldStorage.ErrFieldNotFound},
		&mockUserRepo{user: admin()}, nopLogger{})

	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), &Request{
		UserID:          1,
		FieldID:         404,
		StartDate:       date,
		EndDate:         date,
		StartTime:       types.TimeString("08:00"),
		EndTime:         types.TimeString("12:00"),
		DurationMinutes: 60,
	})

	assert.ErrorIs(t, err, ErrFieldNotFound)
}

func TestExecutePermissionDenied(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleCustomer, domain.RoleStaff} {
		t.Run(string(role), func(t *testing.T) {
			uc := NewUseCase(&mockSlotRepo{}, &mockFieldRepo{field: field()},
				&mockUserRepo{user: &domain.User{ID: 9, Role: role}}, nopLogger{})

			date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
			_, err := uc.Execute(context.Background(), &Request{
				UserID:          9,
				FieldID:         3,
				StartDate:       date,
				EndDate:         date,
				StartTime:       types.TimeString("08:00"),
				EndTime:         types.TimeString("12:00"),
				DurationMinutes: 60,
			})

			assert.ErrorIs(t, err, ErrPermissionDenied)
		})
	}
}

func TestExecuteRerunDuplicates(t *testing.T) {
	// Generation has no duplicate guard: rerunning the same range
	// doubles the rows.
	slotRepo := &mockSlotRepo{}
	uc := newUseCase(slotRepo)

	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	req := &Request{
		UserID:          1,
		FieldID:         3,
		StartDate:       date,
		EndDate:         date,
		StartTime:       types.TimeString("08:00"),
		EndTime:         types.TimeString("10:00"),
		DurationMinutes: 60,
	}

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	_, err = uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Len(t, slotRepo.created, 4)
}
