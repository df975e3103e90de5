package bookings

import (
	"context"
	"time"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, int64, error)
	ListOverlapping(ctx context.Context, start, end time.Time, branchID *int64) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Cancel(ctx context.Context, id int64, reason string) error
}

// GuestRepository интерфейс репозитория гостей
type GuestRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Guest, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
