package assign_room

import (
	"context"

	assignRoom "github.com/m04kA/HMS-FrontdeskService/internal/usecase/assign_room"
)

type AssignRoomUseCase interface {
	Check(ctx context.Context, req *assignRoom.Request) (*assignRoom.CheckResponse, error)
	Execute(ctx context.Context, req *assignRoom.Request) (*assignRoom.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
