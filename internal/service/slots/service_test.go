package slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xarena/XArena-BookingService/internal/domain"
	userStorage "github.com/xarena/XArena-BookingService/internal/infra/storage/user"
	"github.com/xarena/XArena-BookingService/internal/service/slots/models"
	"github.com/xarena/XArena-BookingService/pkg/ptr"
	"github.com/xarena/XArena-BookingService/pkg/types"
)

type mockSlotRepo struct {
	slot        *domain.Slot
	updatedWith *domain.Slot
}

func (m *mockSlotRepo) GetByID(_ context.Context, id int64) (*domain.Slot, error) {
	return m.slot, nil
}

func (m *mockSlotRepo) Update(_ context.Context, id int64, slot *domain.Slot) (*domain.Slot, error) {
	m.updatedWith = slot
	return slot, nil
}

type mockBookingRepo struct {
	activeCount int
	counted     bool
}

func (m *mockBookingRepo) CountActiveBySlot(_ context.Context, slotID int64) (int, error) {
	m.counted = true
	return m.activeCount, nil
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

func occupiedSlot() *domain.Slot {
	return &domain.Slot{
		ID:          10,
		FieldID:     3,
		Date:        time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		StartTime:   types.TimeString("09:00"),
		EndTime:     types.TimeString("10:00"),
		IsAvailable: false,
	}
}

func newService(slotRepo *mockSlotRepo, bookingRepo *mockBookingRepo) *Service {
	users := map[int64]*domain.User{
		1: {ID: 1, Role: domain.RoleAdmin},
		5: {ID: 5, Role: domain.RoleCustomer},
	}
	return NewService(slotRepo, bookingRepo, &mockUserRepo{users: users}, nopLogger{})
}

func TestUpdateSlotTimes(t *testing.T) {
	slotRepo := &mockSlotRepo{slot: occupiedSlot()}
	svc := newService(slotRepo, &mockBookingRepo{})

	result, err := svc.Update(context.Background(), 10, &models.UpdateSlotRequest{
		ActorID:   1,
		StartTime: ptr.Ptr("10:00"),
		EndTime:   ptr.Ptr("11:00"),
	})

	require.NoError(t, err)
	assert.Equal(t, "10:00", result.StartTime)
	assert.Equal(t, "11:00", result.EndTime)
}

func TestUpdateSlotFreeingBlockedByActiveBooking(t *testing.T) {
	slotRepo := &mockSlotRepo{slot: occupiedSlot()}
	bookingRepo := &mockBookingRepo{activeCount: 1}
	svc := newService(slotRepo, bookingRepo)

	_, err := svc.Update(context.Background(), 10, &models.UpdateSlotRequest{
		ActorID:     1,
		IsAvailable: ptr.Ptr(true),
	})

	assert.ErrorIs(t, err, ErrSlotHasActiveBooking)
	assert.True(t, bookingRepo.counted)
	assert.Nil(t, slotRepo.updatedWith)
}

func TestUpdateSlotFreeingWithoutBooking(t *testing.T) {
	slotRepo := &mockSlotRepo{slot: occupiedSlot()}
	svc := newService(slotRepo, &mockBookingRepo{activeCount: 0})

	result, err := svc.Update(context.Background(), 10, &models.UpdateSlotRequest{
		ActorID:     1,
		IsAvailable: ptr.Ptr(true),
	})

	require.NoError(t, err)
	assert.True(t, result.IsAvailable)
}

func TestUpdateSlotOccupyingSkipsCount(t *testing.T) {
	free := occupiedSlot()
	free.IsAvailable = true
	slotRepo := &mockSlotRepo{slot: free}
	bookingRepo := &mockBookingRepo{activeCount: 1}
	svc := newService(slotRepo, bookingRepo)

	// Taking a slot off the market is always allowed.
	result, err := svc.Update(context.Background(), 10, &models.UpdateSlotRequest{
		ActorID:     1,
		IsAvailable: ptr.Ptr(false),
	})

	require.NoError(t, err)
	assert.False(t, result.IsAvailable)
	assert.False(t, bookingRepo.counted)
}

func TestUpdateSlotInvalidWindow(t *testing.T) {
	svc := newService(&mockSlotRepo{slot: occupiedSlot()}, &mockBookingRepo{})

	_, err := svc.Update(context.Background(), 10, &models.UpdateSlotRequest{
		ActorID:   1,
		StartTime: ptr.Ptr("11:00"),
		EndTime:   ptr.Ptr("10:00"),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateSlotAdminOnly(t *testing.T) {
	svc := newService(&mockSlotRepo{slot: occupiedSlot()}, &mockBookingRepo{})

	_, err := svc.Update(context.Background(), 10, &models.UpdateSlotRequest{
		ActorID:     5,
		IsAvailable: ptr.Ptr(true),
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
}
