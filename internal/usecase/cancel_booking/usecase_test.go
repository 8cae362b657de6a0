package cancel_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xarena/XArena-BookingService/internal/domain"
	bookingStorage "github.com/xarena/XArena-BookingService/internal/infra/storage/booking"
)

var storedUpdatedAt = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type mockBookingRepo struct {
	booking      *domain.Booking
	getErr       error
	updateErr    error
	updatedTo    domain.BookingStatus
	updateCalled bool
}

func (m *mockBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.booking, nil
}

func (m *mockBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus, staffID *int64) error {
	m.updateCalled = true
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updatedTo = status
	// Mirror the store so the in-transaction re-read sees the write.
	m.booking.Status = status
	m.booking.UpdatedAt = storedUpdatedAt
	return nil
}

type mockSlotRepo struct {
	freedIDs []int64
	err      error
}

func (m *mockSlotRepo) MarkFree(_ context.Context, id int64) error {
	if m.err != nil {
		return m.err
	}
	m.freedIDs = append(m.freedIDs, id)
	return nil
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

func pendingBooking() *domain.Booking {
	return &domain.Booking{
		ID:            1,
		UserID:        5,
		SlotID:        10,
		PaymentMethod: domain.PaymentTransfer,
		Status:        domain.StatusPending,
	}
}

func TestExecuteSuccess(t *testing.T) {
	bookingRepo := &mockBookingRepo{booking: pendingBooking()}
	slotRepo := &mockSlotRepo{}

	uc := NewUseCase(bookingRepo, slotRepo,
		&mockUserRepo{user: &domain.User{ID: 5, Role: domain.RoleCustomer}}, &fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: 5, BookingID: 1})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	assert.Equal(t, domain.StatusCancelled, bookingRepo.updatedTo)
	assert.Equal(t, []int64{10}, slotRepo.freedIDs)
	assert.Equal(t, storedUpdatedAt, resp.UpdatedAt)
}

func TestExecuteSlotAlreadyFree(t *testing.T) {
	// MarkFree is unconditional in the slot repository, so a slot an
	// admin already flagged free does not block the cancellation.
	bookingRepo := &mockBookingRepo{booking: pendingBooking()}
	slotRepo := &mockSlotRepo{}

	uc := NewUseCase(bookingRepo, slotRepo,
		&mockUserRepo{user: &domain.User{ID: 5, Role: domain.RoleCustomer}}, &fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: 5, BookingID: 1})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	assert.Equal(t, []int64{10}, slotRepo.freedIDs)
}

func TestExecuteNotOwner(t *testing.T) {
	bookingRepo := &mockBookingRepo{booking: pendingBooking()}
	slotRepo := &mockSlotRepo{}

	uc := NewUseCase(bookingRepo, slotRepo,
		&mockUserRepo{user: &domain.User{ID: 6, Role: domain.RoleCustomer}}, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 6, BookingID: 1})

	assert.ErrorIs(t, err, ErrNotOwner)
	assert.False(t, bookingRepo.updateCalled)
	assert.Empty(t, slotRepo.freedIDs)
}

func TestExecuteNotCancellable(t *testing.T) {
	// Once staff accepted, completed or cancelled the booking, the
	// customer path is closed.
	for _, status := range []domain.BookingStatus{
		domain.StatusAccepted,
		domain.StatusCompleted,
		domain.StatusCancelled,
	} {
		t.Run(string(status), func(t *testing.T) {
			booking := pendingBooking()
			booking.Status = status

			bookingRepo := &mockBookingRepo{booking: booking}
			slotRepo := &mockSlotRepo{}

			uc := NewUseCase(bookingRepo, slotRepo,
				&mockUserRepo{user: &domain.User{ID: 5, Role: domain.RoleCustomer}}, &fakeTxManager{}, nopLogger{})

			_, err := uc.Execute(context.Background(), &Request{UserID: 5, BookingID: 1})

			assert.ErrorIs(t, err, ErrNotCancellable)
			assert.Empty(t, slotRepo.freedIDs)
		})
	}
}

func TestExecuteBookingNotFound(t *testing.T) {
	uc := NewUseCase(&mockBookingRepo{getErr: bookingStorage.ErrBookingNotFound}, &mockSlotRepo{},
		&mockUserRepo{user: &domain.User{ID: 5, Role: domain.RoleCustomer}}, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 5, BookingID: 404})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecutePermissionDenied(t *testing.T) {
	uc := NewUseCase(&mockBookingRepo{booking: pendingBooking()}, &mockSlotRepo{},
		&mockUserRepo{user: &domain.User{ID: 5, Role: domain.RoleStaff}}, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 5, BookingID: 1})

	assert.ErrorIs(t, err, ErrPermissionDenied)
}
