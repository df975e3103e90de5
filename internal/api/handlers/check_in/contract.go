package check_in

import (
	"context"

	checkIn "github.com/m04kA/HMS-FrontdeskService/internal/usecase/check_in"
)

type CheckInUseCase interface {
	Start(ctx context.Context, bookingID int64) (*checkIn.SessionResponse, error)
	Get(ctx context.Context, bookingID int64) (*checkIn.SessionResponse, error)
	Next(ctx context.Context, req *checkIn.NextRequest) (*checkIn.SessionResponse, error)
	Previous(ctx context.Context, bookingID int64) (*checkIn.SessionResponse, error)
	Complete(ctx context.Context, bookingID int64) (*checkIn.CompleteResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
