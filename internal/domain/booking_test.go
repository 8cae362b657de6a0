package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidBookingStatus(t *testing.T) {
	for _, s := range []BookingStatus{StatusPending, StatusAccepted, StatusCompleted, StatusCancelled} {
		assert.True(t, ValidBookingStatus(s), string(s))
	}
	assert.False(t, ValidBookingStatus(BookingStatus("confirmed")))
	assert.False(t, ValidBookingStatus(BookingStatus("")))
}

func TestValidPaymentMethod(t *testing.T) {
	assert.True(t, ValidPaymentMethod(PaymentTransfer))
	assert.True(t, ValidPaymentMethod(PaymentCash))
	assert.False(t, ValidPaymentMethod(PaymentMethod("credit")))
	assert.False(t, ValidPaymentMethod(PaymentMethod("")))
}

func TestCanBeCancelledByCustomer(t *testing.T) {
	b := &Booking{Status: StatusPending}
	assert.True(t, b.CanBeCancelledByCustomer())

	for _, s := range []BookingStatus{StatusAccepted, StatusCompleted, StatusCancelled} {
		b.Status = s
		assert.False(t, b.CanBeCancelledByCustomer(), string(s))
	}
}
