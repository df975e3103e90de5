package check_in

import (
	"context"
	"time"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
)

// CheckInRepository интерфейс репозитория сессий и записей заселения
type CheckInRepository interface {
	CreateSession(ctx context.Context, s *domain.CheckInSession) (*domain.CheckInSession, error)
	GetSessionByBookingID(ctx context.Context, bookingID int64) (*domain.CheckInSession, error)
	UpdateSession(ctx context.Context, s *domain.CheckInSession) error
	CompleteSession(ctx context.Context, id int64, completedAt time.Time) error
	CreateRecord(ctx context.Context, rec *domain.CheckInRecord) (*domain.CheckInRecord, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	AssignRoom(ctx context.Context, id int64, roomID int64, roomNumber string) error
}

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
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
