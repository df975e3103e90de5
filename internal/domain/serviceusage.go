package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceUsage оказанная гостю услуга, начисляемая на фолио бронирования
type ServiceUsage struct {
	ID          int64
	BookingID   int64
	ServiceName string
	Department  string
	Quantity    int
	Amount      decimal.Decimal
	UsedAt      time.Time
	CreatedAt   time.Time
}

// ServiceUsageFilter фильтр для списка услуг
type ServiceUsageFilter struct {
	BookingID  *int64
	Department *string
	Page       int64
	Limit      int64
}
