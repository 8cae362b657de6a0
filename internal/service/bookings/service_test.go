package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xarena/XArena-BookingService/internal/domain"
	bookingStorage "github.com/xarena/XArena-BookingService/internal/infra/storage/booking"
	userStorage "github.com/xarena/XArena-BookingService/internal/infra/storage/user"
	"github.com/xarena/XArena-BookingService/internal/service/bookings/models"
	"github.com/xarena/XArena-BookingService/pkg/ptr"
	"github.com/xarena/XArena-BookingService/pkg/types"
)

type mockBookingRepo struct {
	booking       *domain.Booking
	getErr        error
	updatedStatus domain.BookingStatus
	updatedStaff  *int64
	updateCalled  bool
}

func (m *mockBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.booking, nil
}

func (m *mockBookingRepo) GetByUserID(_ context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	return []*domain.Booking{m.booking}, nil
}

func (m *mockBookingRepo) ListWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	return []*domain.Booking{m.booking}, nil
}

func (m *mockBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus, staffID *int64) error {
	m.updateCalled = true
	m.updatedStatus = status
	m.updatedStaff = staffID
	return nil
}

type mockSlotRepo struct {
	slot *domain.Slot
}

func (m *mockSlotRepo) GetByID(_ context.Context, id int64) (*domain.Slot, error) {
	return m.slot, nil
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

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService(bookingRepo *mockBookingRepo, rate string) *Service {
	slot := &domain.Slot{
		ID:        10,
		FieldID:   3,
		Date:      time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		StartTime: types.TimeString("09:00"),
		EndTime:   types.TimeString("10:30"),
	}
	field := &domain.Field{
		ID:         3,
		Name:       "Lapangan Futsal A",
		HourlyRate: decimal.RequireFromString(rate),
	}
	users := map[int64]*domain.User{
		5: {ID: 5, Role: domain.RoleCustomer},
		6: {ID: 6, Role: domain.RoleCustomer},
		2: {ID: 2, Role: domain.RoleStaff},
	}
	return NewService(bookingRepo, &mockSlotRepo{slot: slot}, &mockFieldRepo{field: field},
		&mockUserRepo{users: users}, nopLogger{})
}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:            1,
		UserID:        5,
		SlotID:        10,
		PaymentMethod: domain.PaymentTransfer,
		Status:        domain.StatusPending,
	}
}

func TestGetByIDOwner(t *testing.T) {
	svc := newService(&mockBookingRepo{booking: testBooking()}, "100000")

	resp, err := svc.GetByID(context.Background(), 1, 5)

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Lapangan Futsal A", resp.FieldName)
	// 90 minutes at 100000/hour
	assert.True(t, resp.TotalPrice.Equal(decimal.RequireFromString("150000")),
		"expected 150000, got %s", resp.TotalPrice)
}

func TestGetByIDStaffSeesAny(t *testing.T) {
	svc := newService(&mockBookingRepo{booking: testBooking()}, "100000")

	resp, err := svc.GetByID(context.Background(), 1, 2)

	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.UserID)
}

func TestGetByIDOtherCustomerDenied(t *testing.T) {
	svc := newService(&mockBookingRepo{booking: testBooking()}, "100000")

	_, err := svc.GetByID(context.Background(), 1, 6)

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByIDNotFound(t *testing.T) {
	svc := newService(&mockBookingRepo{getErr: bookingStorage.ErrBookingNotFound}, "100000")

	_, err := svc.GetByID(context.Background(), 404, 5)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestPriceFollowsRateChange(t *testing.T) {
	// The price is derived at read time, so the same booking reads
	// differently after a rate change.
	booking := testBooking()

	before := newService(&mockBookingRepo{booking: booking}, "100000")
	respBefore, err := before.GetByID(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.True(t, respBefore.TotalPrice.Equal(decimal.RequireFromString("150000")))

	after := newService(&mockBookingRepo{booking: booking}, "120000")
	respAfter, err := after.GetByID(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.True(t, respAfter.TotalPrice.Equal(decimal.RequireFromString("180000")),
		"expected 180000, got %s", respAfter.TotalPrice)
}

func TestUpdateStatusStaffAnyTransition(t *testing.T) {
	// The staff channel has no transition guard: any valid status can
	// be set on any booking, including reopening a finished one.
	transitions := []struct {
		from domain.BookingStatus
		to   string
	}{
		{from: domain.StatusPending, to: "diterima"},
		{from: domain.StatusAccepted, to: "selesai"},
		{from: domain.StatusCompleted, to: "pending"},
		{from: domain.StatusCancelled, to: "diterima"},
		{from: domain.StatusAccepted, to: "dibatalkan"},
	}

	for _, tt := range transitions {
		t.Run(string(tt.from)+"_to_"+tt.to, func(t *testing.T) {
			booking := testBooking()
			booking.Status = tt.from
			bookingRepo := &mockBookingRepo{booking: booking}
			svc := newService(bookingRepo, "100000")

			err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
				ActorID: 2,
				Status:  tt.to,
			})

			require.NoError(t, err)
			assert.Equal(t, domain.BookingStatus(tt.to), bookingRepo.updatedStatus)
			require.NotNil(t, bookingRepo.updatedStaff)
			assert.Equal(t, int64(2), *bookingRepo.updatedStaff)
		})
	}
}

func TestUpdateStatusInvalidValue(t *testing.T) {
	bookingRepo := &mockBookingRepo{booking: testBooking()}
	svc := newService(bookingRepo, "100000")

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		ActorID: 2,
		Status:  "approved",
	})

	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.False(t, bookingRepo.updateCalled)
}

func TestUpdateStatusCustomerDenied(t *testing.T) {
	bookingRepo := &mockBookingRepo{booking: testBooking()}
	svc := newService(bookingRepo, "100000")

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		ActorID: 5,
		Status:  "diterima",
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.False(t, bookingRepo.updateCalled)
}

func TestGetUserBookingsInvalidStatus(t *testing.T) {
	svc := newService(&mockBookingRepo{booking: testBooking()}, "100000")

	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		ActorID: 5,
		UserID:  5,
		Status:  ptr.Ptr("unknown"),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetUserBookingsForeignHistory(t *testing.T) {
	svc := newService(&mockBookingRepo{booking: testBooking()}, "100000")

	// Staff may read any customer's history.
	result, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		ActorID: 2,
		UserID:  5,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Total)

	// Another customer may not.
	_, err = svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		ActorID: 6,
		UserID:  5,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}
