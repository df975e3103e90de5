package room_availability

import (
	"context"
	"time"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
)

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	ListWithFilter(ctx context.Context, filter domain.RoomsFilter) ([]*domain.Room, int64, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListOverlapping(ctx context.Context, start, end time.Time, branchID *int64) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
