package domain

import "time"

// PreBookingStatus represents the status of a pre-booking
type PreBookingStatus string

const (
	PreBookingPending   PreBookingStatus = "pending"
	PreBookingConverted PreBookingStatus = "converted"
	PreBookingCancelled PreBookingStatus = "cancelled"
)

// PreBooking заявка на бронирование до привязки к конкретному номеру
// Конвертируется в бронирование не более одного раза
type PreBooking struct {
	ID            int64
	ReferenceCode string
	CustomerID    int64
	GuestID       int64
	BranchID      int64
	RoomTypeID    int64 // Запрошенная категория номера
	NumberOfRooms int
	CheckInDate   time.Time
	CheckOutDate  time.Time
	Adults        int
	Children      int
	Status        PreBookingStatus
	Notes         *string

	// Denormalized for list rendering
	GuestName    string
	CustomerName string
	RoomTypeName string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsGroup returns true if the pre-booking spans more than one room
// Групповое бронирование назначает тип + количество, а не конкретный номер
func (p *PreBooking) IsGroup() bool {
	return p.NumberOfRooms > 1
}

// CanConvert returns true if the pre-booking has not been converted or cancelled yet
func (p *PreBooking) CanConvert() bool {
	return p.Status == PreBookingPending
}

// NightCount количество ночей проживания
func (p *PreBooking) NightCount() int {
	nights := int(p.CheckOutDate.Sub(p.CheckInDate).Hours() / 24)
	if nights < 1 {
		return 1
	}
	return nights
}

// PreBookingsFilter фильтр для списка заявок
type PreBookingsFilter struct {
	BranchID   *int64
	RoomTypeID *int64
	Status     *PreBookingStatus
	StartDate  *time.Time
	EndDate    *time.Time
	Page       int64
	Limit      int64
}
