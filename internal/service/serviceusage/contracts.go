package serviceusage

import (
	"context"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
)

// UsageRepository интерфейс репозитория оказанных услуг
type UsageRepository interface {
	Create(ctx context.Context, u *domain.ServiceUsage) (*domain.ServiceUsage, error)
	ListByBooking(ctx context.Context, bookingID int64) ([]*domain.ServiceUsage, error)
	ListWithFilter(ctx context.Context, filter domain.ServiceUsageFilter) ([]*domain.ServiceUsage, int64, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
