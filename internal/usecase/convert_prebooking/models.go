package convert_prebooking

import (
	"time"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
)

// Request запрос на конвертацию заявки в бронирование
// TotalAmount и AdvancePayment опциональны: отсутствующие значения
// выводятся из тарифа категории (аванс - 10% от суммы).
// RoomID обязателен для индивидуальной заявки (номер выбирает оператор
// из свободных номеров запрошенной категории) и запрещен для групповой
type Request struct {
	PreBookingID   int64
	RoomID         *int64  `json:"roomId,omitempty"`
	TotalAmount    *string `json:"totalAmount,omitempty"`
	AdvancePayment *string `json:"advancePayment,omitempty"`
	Notes          *string `json:"notes,omitempty"`
}

// Response итог конвертации
type Response struct {
	BookingID      int64   `json:"bookingId"`
	PreBookingID   int64   `json:"preBookingId"`
	ReferenceCode  string  `json:"referenceCode"`
	Status         string  `json:"status"`
	IsGroupBooking bool    `json:"isGroupBooking"`
	RoomID         *int64  `json:"roomId,omitempty"`     // Для индивидуального бронирования
	RoomNumber     *string `json:"roomNumber,omitempty"` // Для индивидуального бронирования
	RoomTypeID     int64   `json:"roomTypeId"`
	RoomQuantity   int     `json:"roomQuantity"`
	TotalAmount    string  `json:"totalAmount"`
	AdvancePayment string  `json:"advancePayment"`
	CheckInDate    string  `json:"checkInDate"`
	CheckOutDate   string  `json:"checkOutDate"`

	CreatedAt time.Time `json:"createdAt"`
}

func toResponse(b *domain.Booking, preBookingID int64) *Response {
	return &Response{
		BookingID:      b.ID,
		PreBookingID:   preBookingID,
		ReferenceCode:  b.ReferenceCode,
		Status:         string(b.Status),
		IsGroupBooking: b.IsGroupBooking,
		RoomID:         b.RoomID,
		RoomNumber:     b.RoomNumber,
		RoomTypeID:     *b.RoomTypeID,
		RoomQuantity:   b.RoomQuantity,
		TotalAmount:    b.TotalAmount.StringFixed(2),
		AdvancePayment: b.AdvancePayment.StringFixed(2),
		CheckInDate:    b.CheckInDate.Format(domain.DateFormat),
		CheckOutDate:   b.CheckOutDate.Format(domain.DateFormat),
		CreatedAt:      b.CreatedAt,
	}
}
