package assign_room

import (
	"context"
	"time"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetRoomConflicts(ctx context.Context, roomID int64, start, end time.Time, excludeBookingID *int64) ([]domain.RoomConflict, error)
	AssignRoom(ctx context.Context, id int64, roomID int64, roomNumber string) error
}

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	GetType(ctx context.Context, id int64) (*domain.RoomType, error)
	ListTypes(ctx context.Context) ([]*domain.RoomType, error)
	ListAvailableByType(ctx context.Context, roomTypeID int64, branchID *int64) ([]*domain.Room, error)
	UpdateStatus(ctx context.Context, id int64, status domain.RoomStatus) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
