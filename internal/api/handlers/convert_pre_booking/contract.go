package convert_pre_booking

import (
	"context"

	convertPreBooking "github.com/m04kA/HMS-FrontdeskService/internal/usecase/convert_prebooking"
)

type ConvertPreBookingUseCase interface {
	Execute(ctx context.Context, req *convertPreBooking.Request) (*convertPreBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
