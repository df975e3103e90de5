package room_availability

import (
	"context"

	roomAvailability "github.com/m04kA/HMS-FrontdeskService/internal/usecase/room_availability"
)

type RoomAvailabilityUseCase interface {
	Execute(ctx context.Context, req *roomAvailability.Request) (*roomAvailability.Response, error)
	ExportCSV(ctx context.Context, req *roomAvailability.Request) ([]byte, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
