package list_rooms

import (
	"context"

	"github.com/m04kA/HMS-FrontdeskService/internal/service/rooms/models"
)

type RoomService interface {
	List(ctx context.Context, req *models.ListRoomsRequest) (*models.RoomListResponse, error)
	ListTypes(ctx context.Context) (*models.RoomTypeListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
