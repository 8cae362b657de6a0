package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xarena/XArena-BookingService/internal/domain"
	slotStorage "github.com/xarena/XArena-BookingService/internal/infra/storage/slot"
	userStorage "github.com/xarena/XArena-BookingService/internal/infra/storage/user"
	"github.com/xarena/XArena-BookingService/pkg/types"
)

type mockBookingRepo struct {
	created *domain.Booking
	err     error
}

func (m *mockBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if m.err != nil {
		return nil, m.err
	}
	booking.ID = 1
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt
	m.created = booking
	return booking, nil
}

type mockSlotRepo struct {
	slot        *domain.Slot
	getErr      error
	markErr     error
	markedIDs   []int64
	occupyCalls int
}

func (m *mockSlotRepo) GetByIDForUpdate(_ context.Context, id int64) (*domain.Slot, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.slot, nil
}

func (m *mockSlotRepo) MarkOccupied(_ context.Context, id int64) error {
	m.occupyCalls++
	if m.markErr != nil {
		return m.markErr
	}
	m.markedIDs = append(m.markedIDs, id)
	return nil
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

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testSlot() *domain.Slot {
	return &domain.Slot{
		ID:          10,
		FieldID:     3,
		Date:        time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		StartTime:   types.TimeString("09:00"),
		EndTime:     types.TimeString("10:30"),
		IsAvailable: true,
	}
}

func testField() *domain.Field {
	return &domain.Field{
		ID:          3,
		Name:        "Lapangan Futsal A",
		HourlyRate:  decimal.RequireFromString("100000"),
		IsAvailable: true,
	}
}

func TestExecuteSuccess(t *testing.T) {
	bookingRepo := &mockBookingRepo{}
	slotRepo := &mockSlotRepo{slot: testSlot()}
	fieldRepo := &mockFieldRepo{field: testField()}
	userRepo := &mockUserRepo{user: &domain.User{ID: 5, Role: domain.RoleCustomer}}

	uc := NewUseCase(bookingRepo, slotRepo, fieldRepo, userRepo, &fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:        5,
		SlotID:        10,
		PaymentMethod: domain.PaymentTransfer,
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, int64(5), resp.UserID)
	assert.Equal(t, int64(10), resp.SlotID)
	assert.Equal(t, []int64{10}, slotRepo.markedIDs)
	// 90 minutes at 100000/hour
	assert.True(t, resp.TotalPrice.Equal(decimal.RequireFromString("150000")),
		"expected 150000, got %s", resp.TotalPrice)
	require.NotNil(t, bookingRepo.created)
	assert.Nil(t, bookingRepo.created.StaffID)
}

func TestExecuteSlotTaken(t *testing.T) {
	slot := testSlot()
	slot.IsAvailable = false

	slotRepo := &mockSlotRepo{slot: slot}
	uc := NewUseCase(&mockBookingRepo{}, slotRepo, &mockFieldRepo{field: testField()},
		&mockUserRepo{user: &domain.User{ID: 5, Role: domain.RoleCustomer}}, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 5, SlotID: 10, PaymentMethod: domain.PaymentCash})

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Zero(t, slotRepo.occupyCalls)
}

func TestExecuteSlotTakenConcurrently(t *testing.T) {
	// The conditional UPDATE lost the race even though the read saw the
	// slot free.
	slotRepo := &mockSlotRepo{slot: testSlot(), markErr: slotStorage.ErrSlotNotAvailable}
	uc := NewUseCase(&mockBookingRepo{}, slotRepo, &mockFieldRepo{field: testField()},
		&mockUserRepo{user: &domain.User{ID: 5, Role: domain.RoleCustomer}}, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 5, SlotID: 10, PaymentMethod: domain.PaymentCash})

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecuteSlotNotFound(t *testing.T) {
	slotRepo := &mockSlotRepo{getErr: slotStorage.ErrSlotNotFound}
	uc := NewUseCase(&mockBookingRepo{}, slotRepo, &mockFieldRepo{field: testField()},
		&mockUserRepo{user: &domain.User{ID: 5, Role: domain.RoleCustomer}}, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 5, SlotID: 99, PaymentMethod: domain.PaymentCash})

	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecuteFieldClosed(t *testing.T) {
	field := testField()
	field.IsAvailable = false

	uc := NewUseCase(&mockBookingRepo{}, &mockSlotRepo{slot: testSlot()}, &mockFieldRepo{field: field},
		&mockUserRepo{user: &domain.User{ID: 5, Role: domain.RoleCustomer}}, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 5, SlotID: 10, PaymentMethod: domain.PaymentCash})

	assert.ErrorIs(t, err, ErrFieldNotAvailable)
}

func TestExecuteUserNotFound(t *testing.T) {
	uc := NewUseCase(&mockBookingRepo{}, &mockSlotRepo{slot: testSlot()}, &mockFieldRepo{field: testField()},
		&mockUserRepo{err: userStorage.ErrUserNotFound}, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 404, SlotID: 10, PaymentMethod: domain.PaymentCash})

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestExecutePermissionDenied(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleStaff, domain.RoleAdmin} {
		t.Run(string(role), func(t *testing.T) {
			uc := NewUseCase(&mockBookingRepo{}, &mockSlotRepo{slot: testSlot()}, &mockFieldRepo{field: testField()},
				&mockUserRepo{user: &domain.User{ID: 7, Role: role}}, &fakeTxManager{}, nopLogger{})

			_, err := uc.Execute(context.Background(), &Request{UserID: 7, SlotID: 10, PaymentMethod: domain.PaymentCash})

			assert.ErrorIs(t, err, ErrPermissionDenied)
		})
	}
}

func TestExecuteInvalidInput(t *testing.T) {
	uc := NewUseCase(&mockBookingRepo{}, &mockSlotRepo{slot: testSlot()}, &mockFieldRepo{field: testField()},
		&mockUserRepo{user: &domain.User{ID: 5, Role: domain.RoleCustomer}}, &fakeTxManager{}, nopLogger{})

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "zero user", req: &Request{UserID: 0, SlotID: 10, PaymentMethod: domain.PaymentCash}},
		{name: "zero slot", req: &Request{UserID: 5, SlotID: 0, PaymentMethod: domain.PaymentCash}},
		{name: "bad payment method", req: &Request{UserID: 5, SlotID: 10, PaymentMethod: "crypto"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
