package checkout

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
	"github.com/m04kA/HMS-FrontdeskService/internal/integrations/paymentgateway"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	ApplyCheckout(ctx context.Context, id int64, chargesTotal, finalPayment decimal.Decimal) error
}

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	UpdateStatus(ctx context.Context, id int64, status domain.RoomStatus) error
}

// UsageRepository интерфейс репозитория оказанных услуг
type UsageRepository interface {
	Create(ctx context.Context, u *domain.ServiceUsage) (*domain.ServiceUsage, error)
	SumByBooking(ctx context.Context, bookingID int64) (decimal.Decimal, error)
}

// HousekeepingRepository интерфейс репозитория задач уборки
type HousekeepingRepository interface {
	Create(ctx context.Context, t *domain.HousekeepingTask) (*domain.HousekeepingTask, error)
}

// PaymentGatewayClient интерфейс клиента платежного шлюза
type PaymentGatewayClient interface {
	ChargeWithGracefulDegradation(ctx context.Context, req paymentgateway.ChargeRequest) (*paymentgateway.ChargeResponse, error)
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
