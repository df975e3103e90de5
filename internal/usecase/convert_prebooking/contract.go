package convert_prebooking

import (
	"context"
	"time"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
)

// PreBookingRepository интерфейс репозитория заявок
type PreBookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.PreBooking, error)
	MarkConverted(ctx context.Context, id int64) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	GetType(ctx context.Context, id int64) (*domain.RoomType, error)
	ListAvailableByType(ctx context.Context, roomTypeID int64, branchID *int64) ([]*domain.Room, error)
	UpdateStatus(ctx context.Context, id int64, status domain.RoomStatus) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
