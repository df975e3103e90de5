package prebookings

import (
	"context"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
)

// PreBookingRepository интерфейс репозитория заявок
type PreBookingRepository interface {
	Create(ctx context.Context, p *domain.PreBooking) (*domain.PreBooking, error)
	GetByID(ctx context.Context, id int64) (*domain.PreBooking, error)
	ListWithFilter(ctx context.Context, filter domain.PreBookingsFilter) ([]*domain.PreBooking, int64, error)
	Cancel(ctx context.Context, id int64) error
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
