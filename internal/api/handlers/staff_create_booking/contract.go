package staff_create_booking

import (
	"context"

	staffCreateBooking "github.com/xarena/XArena-BookingService/internal/usecase/staff_create_booking"
)

type StaffCreateBookingUseCase interface {
	Execute(ctx context.Context, req *staffCreateBooking.Request) (*staffCreateBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
