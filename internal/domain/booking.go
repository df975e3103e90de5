package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusPreBooked  BookingStatus = "pre_booked"
	StatusBooked     BookingStatus = "booked"
	StatusCheckedIn  BookingStatus = "checked_in"
	StatusCheckedOut BookingStatus = "checked_out"
	StatusCancelled  BookingStatus = "cancelled"
)

// BookingMeta свободные атрибуты бронирования
type BookingMeta struct {
	SpecialRequests *string
	Alerts          *string
	LoyaltyID       *string
	GroupBlockID    *string
}

// Booking represents a hotel booking
type Booking struct {
	ID             int64
	ReferenceCode  string
	CustomerID     int64 // Кто бронировал (может отличаться от проживающего гостя)
	GuestID        int64 // Кто проживает
	BranchID       int64
	RoomID         *int64 // NULL до назначения номера
	RoomTypeID     *int64 // Для групповых бронирований - тип вместо конкретного номера
	RoomQuantity   int    // Количество номеров для группового бронирования
	IsGroupBooking bool

	CheckInDate  time.Time
	CheckOutDate time.Time
	Nights       int
	Adults       int
	Children     int

	Status BookingStatus

	TotalAmount      decimal.Decimal
	AdvancePayment   decimal.Decimal
	PaymentsTotal    decimal.Decimal
	AdjustmentsTotal decimal.Decimal
	// BalanceDue хранится, только если его прислал источник данных
	// Если nil - считается по формуле, см. EffectiveBalanceDue
	BalanceDue *decimal.Decimal

	Meta BookingMeta

	// Denormalized data for list rendering and history
	GuestName    string
	CustomerName string
	RoomNumber   *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EffectiveBalanceDue возвращает сохранённый balance_due, а если его нет -
// считает: total_amount - (advance_payment + payments_total + adjustments_total)
func (b *Booking) EffectiveBalanceDue() decimal.Decimal {
	if b.BalanceDue != nil {
		return *b.BalanceDue
	}
	credited := b.AdvancePayment.Add(b.PaymentsTotal).Add(b.AdjustmentsTotal)
	return b.TotalAmount.Sub(credited)
}

// IsActive returns true if the booking still occupies inventory
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled && b.Status != StatusCheckedOut
}

// CanCheckIn returns true if the booking is ready for the check-in wizard
func (b *Booking) CanCheckIn() bool {
	return b.Status == StatusBooked
}

// CanCheckOut returns true if the booking can go through checkout
func (b *Booking) CanCheckOut() bool {
	return b.Status == StatusCheckedIn
}

// CanAssignRoom returns true if a room may be (re)assigned to the booking
func (b *Booking) CanAssignRoom() bool {
	return b.Status == StatusBooked || b.Status == StatusPreBooked
}

// HasRoom returns true if a specific room has been assigned
func (b *Booking) HasRoom() bool {
	return b.RoomID != nil
}

// PartySize количество проживающих (для подбора номеров на повышение категории)
func (b *Booking) PartySize() int {
	return b.Adults + b.Children
}

// BookingsFilter фильтр для списка бронирований
// Статус, даты, филиал и тип номера уходят в SQL; текстовый поиск
// применяется поверх загруженной страницы (см. сервис бронирований)
type BookingsFilter struct {
	BranchID   *int64
	RoomTypeID *int64
	Status     *BookingStatus
	StartDate  *time.Time
	EndDate    *time.Time
	Page       int64
	Limit      int64
}

// RoomConflict пересечение дат бронирования с номером
type RoomConflict struct {
	RoomID        int64
	BookingID     int64
	ReferenceCode string
	GuestName     string
	CheckInDate   time.Time
	CheckOutDate  time.Time
	Status        BookingStatus
}

// DateRangesOverlap проверяет пересечение полуинтервалов [aStart, aEnd) и [bStart, bEnd)
// День выезда не конфликтует с днем заезда следующего гостя
func DateRangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
