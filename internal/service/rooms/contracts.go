package rooms

import (
	"context"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
)

// RoomRepository интерфейс репозитория номерного фонда
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	ListWithFilter(ctx context.Context, filter domain.RoomsFilter) ([]*domain.Room, int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.RoomStatus) error
	GetType(ctx context.Context, id int64) (*domain.RoomType, error)
	ListTypes(ctx context.Context) ([]*domain.RoomType, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
