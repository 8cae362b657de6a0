package staff_create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xarena/XArena-BookingService/internal/domain"
	userStorage "github.com/xarena/XArena-BookingService/internal/infra/storage/user"
	"github.com/xarena/XArena-BookingService/pkg/types"
)

type mockBookingRepo struct {
	created *domain.Booking
}

func (m *mockBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	booking.ID = 1
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt
	m.created = booking
	return booking, nil
}

type mockSlotRepo struct {
	slot *domain.Slot
}

func (m *mockSlotRepo) GetByIDForUpdate(_ context.Context, id int64) (*domain.Slot, error) {
	return m.slot, nil
}

func (m *mockSlotRepo) MarkOccupied(_ context.Context, id int64) error {
	return nil
}

type mockFieldRepo struct {
	field *domain.Field
}

func (m *mockFieldRepo) GetByID(_ context.Context, id int64) (*domain.Field, error) {
	return m.field, nil
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

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(users map[int64]*domain.User, bookingRepo *mockBookingRepo) *UseCase {
	slot := &domain.Slot{
		ID:          10,
		FieldID:     3,
		Date:        time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		StartTime:   types.TimeString("09:00"),
		EndTime:     types.TimeString("10:00"),
		IsAvailable: true,
	}
	field := &domain.Field{
		ID:          3,
		HourlyRate:  decimal.RequireFromString("100000"),
		IsAvailable: true,
	}
	return NewUseCase(bookingRepo, &mockSlotRepo{slot: slot}, &mockFieldRepo{field: field},
		&mockUserRepo{users: users}, &fakeTxManager{}, nopLogger{})
}

func TestExecuteStartsAccepted(t *testing.T) {
	bookingRepo := &mockBookingRepo{}
	uc := newTestUseCase(map[int64]*domain.User{
		2: {ID: 2, Role: domain.RoleStaff},
		5: {ID: 5, Role: domain.RoleCustomer},
	}, bookingRepo)

	resp, err := uc.Execute(context.Background(), &Request{
		StaffID:       2,
		CustomerID:    5,
		SlotID:        10,
		PaymentMethod: domain.PaymentCash,
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusAccepted), resp.Status)
	assert.Equal(t, int64(5), resp.UserID)
	require.NotNil(t, resp.StaffID)
	assert.Equal(t, int64(2), *resp.StaffID)
	require.NotNil(t, bookingRepo.created.StaffID)
	assert.Equal(t, int64(2), *bookingRepo.created.StaffID)
}

func TestExecuteOwnerMustBeCustomer(t *testing.T) {
	uc := newTestUseCase(map[int64]*domain.User{
		2: {ID: 2, Role: domain.RoleStaff},
		3: {ID: 3, Role: domain.RoleStaff},
	}, &mockBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		StaffID:       2,
		CustomerID:    3,
		SlotID:        10,
		PaymentMethod: domain.PaymentCash,
	})

	assert.ErrorIs(t, err, ErrNotACustomer)
}

func TestExecuteActorMustBeStaff(t *testing.T) {
	uc := newTestUseCase(map[int64]*domain.User{
		5: {ID: 5, Role: domain.RoleCustomer},
		6: {ID: 6, Role: domain.RoleCustomer},
	}, &mockBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		StaffID:       5,
		CustomerID:    6,
		SlotID:        10,
		PaymentMethod: domain.PaymentCash,
	})

	assert.ErrorIs(t, err, ErrPermissionDenied)
}
