package housekeeping

import (
	"context"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
)

// TaskRepository интерфейс репозитория задач уборки
type TaskRepository interface {
	Create(ctx context.Context, t *domain.HousekeepingTask) (*domain.HousekeepingTask, error)
	ListWithFilter(ctx context.Context, filter domain.HousekeepingFilter) ([]*domain.HousekeepingTask, int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.HousekeepingStatus) error
}

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
