package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CreateBookingRequest запрос на создание бронирования
type CreateBookingRequest struct {
	ReferenceCode  string  `json:"referenceCode"`
	CustomerID     int64   `json:"customerId"`
	GuestID        int64   `json:"guestId"`
	BranchID       int64   `json:"branchId"`
	RoomID         *int64  `json:"roomId,omitempty"`
	RoomTypeID     *int64  `json:"roomTypeId,omitempty"`
	RoomQuantity   int     `json:"roomQuantity,omitempty"`
	CheckInDate    string  `json:"checkInDate"`  // "2026-08-20"
	CheckOutDate   string  `json:"checkOutDate"` // "2026-08-23"
	Adults         int     `json:"adults"`
	Children       int     `json:"children"`
	TotalAmount    string  `json:"totalAmount"`
	AdvancePayment string  `json:"advancePayment"`
	Notes          *string `json:"notes,omitempty"`
}

// ListBookingsRequest запрос на получение списка бронирований
type ListBookingsRequest struct {
	BranchID   *int64  `json:"branchId,omitempty"`
	RoomTypeID *int64  `json:"roomTypeId,omitempty"`
	Status     *string `json:"status,omitempty"`
	StartDate  *string `json:"startDate,omitempty"`
	EndDate    *string `json:"endDate,omitempty"`
	// Search текстовый поиск по имени гостя, заказчика, коду и номеру комнаты
	// Применяется к загруженной странице после SQL-фильтров
	Search *string `json:"search,omitempty"`
	Page   int64   `json:"page"`
	Limit  int64   `json:"limit"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		BranchID:   r.BranchID,
		RoomTypeID: r.RoomTypeID,
		Page:       r.Page,
		Limit:      r.Limit,
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = domain.DefaultPageLimit
	}
	if filter.Limit > domain.MaxPageLimit {
		filter.Limit = domain.MaxPageLimit
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	if r.StartDate != nil {
		start, err := time.Parse(domain.DateFormat, *r.StartDate)
		if err != nil {
			return filter, err
		}
		filter.StartDate = &start
	}

	if r.EndDate != nil {
		end, err := time.Parse(domain.DateFormat, *r.EndDate)
		if err != nil {
			return filter, err
		}
		filter.EndDate = &end
	}

	return filter, nil
}

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID             int64   `json:"id"`
	ReferenceCode  string  `json:"referenceCode"`
	CustomerID     int64   `json:"customerId"`
	GuestID        int64   `json:"guestId"`
	BranchID       int64   `json:"branchId"`
	RoomID         *int64  `json:"roomId,omitempty"`
	RoomTypeID     *int64  `json:"roomTypeId,omitempty"`
	RoomQuantity   int     `json:"roomQuantity,omitempty"`
	IsGroupBooking bool    `json:"isGroupBooking"`
	CheckInDate    string  `json:"checkInDate"`
	CheckOutDate   string  `json:"checkOutDate"`
	Nights         int     `json:"nights"`
	Adults         int     `json:"adults"`
	Children       int     `json:"children"`
	Status         string  `json:"status"`
	TotalAmount    string  `json:"totalAmount"`
	AdvancePayment string  `json:"advancePayment"`
	PaymentsTotal  string  `json:"paymentsTotal"`
	BalanceDue     string  `json:"balanceDue"`
	GuestName      string  `json:"guestName"`
	CustomerName   string  `json:"customerName"`
	RoomNumber     *string `json:"roomNumber,omitempty"`

	SpecialRequests *string `json:"specialRequests,omitempty"`
	Alerts          *string `json:"alerts,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Pagination метаданные страницы
type Pagination struct {
	Page       int64 `json:"page"`
	Limit      int64 `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings   []BookingResponse `json:"bookings"`
	Pagination Pagination        `json:"pagination"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:              b.ID,
		ReferenceCode:   b.ReferenceCode,
		CustomerID:      b.CustomerID,
		GuestID:         b.GuestID,
		BranchID:        b.BranchID,
		RoomID:          b.RoomID,
		RoomTypeID:      b.RoomTypeID,
		RoomQuantity:    b.RoomQuantity,
		IsGroupBooking:  b.IsGroupBooking,
		CheckInDate:     b.CheckInDate.Format(domain.DateFormat),
		CheckOutDate:    b.CheckOutDate.Format(domain.DateFormat),
		Nights:          b.Nights,
		Adults:          b.Adults,
		Children:        b.Children,
		Status:          string(b.Status),
		TotalAmount:     b.TotalAmount.StringFixed(2),
		AdvancePayment:  b.AdvancePayment.StringFixed(2),
		PaymentsTotal:   b.PaymentsTotal.StringFixed(2),
		BalanceDue:      b.EffectiveBalanceDue().StringFixed(2),
		GuestName:       b.GuestName,
		CustomerName:    b.CustomerName,
		RoomNumber:      b.RoomNumber,
		SpecialRequests: b.Meta.SpecialRequests,
		Alerts:          b.Meta.Alerts,
		CancellationReason: b.CancellationReason,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking, page, limit, total int64) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
		Pagination: Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages(total, limit),
		},
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	validStatuses := []domain.BookingStatus{
		domain.StatusPreBooked,
		domain.StatusBooked,
		domain.StatusCheckedIn,
		domain.StatusCheckedOut,
		domain.StatusCancelled,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}

// ToDomainBooking конвертирует запрос на создание в domain модель
func (r *CreateBookingRequest) ToDomainBooking() (*domain.Booking, error) {
	checkIn, err := time.Parse(domain.DateFormat, r.CheckInDate)
	if err != nil {
		return nil, err
	}

	checkOut, err := time.Parse(domain.DateFormat, r.CheckOutDate)
	if err != nil {
		return nil, err
	}

	totalAmount, err := decimal.NewFromString(r.TotalAmount)
	if err != nil {
		return nil, err
	}

	advancePayment, err := decimal.NewFromString(r.AdvancePayment)
	if err != nil {
		return nil, err
	}

	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights < 1 {
		nights = 1
	}

	roomQuantity := r.RoomQuantity
	if roomQuantity < 1 {
		roomQuantity = 1
	}

	return &domain.Booking{
		ReferenceCode:  r.ReferenceCode,
		CustomerID:     r.CustomerID,
		GuestID:        r.GuestID,
		BranchID:       r.BranchID,
		RoomID:         r.RoomID,
		RoomTypeID:     r.RoomTypeID,
		RoomQuantity:   roomQuantity,
		IsGroupBooking: roomQuantity > 1,
		CheckInDate:    checkIn,
		CheckOutDate:   checkOut,
		Nights:         nights,
		Adults:         r.Adults,
		Children:       r.Children,
		Status:         domain.StatusBooked,
		TotalAmount:    totalAmount,
		AdvancePayment: advancePayment,
		Meta: domain.BookingMeta{
			SpecialRequests: r.Notes,
		},
	}, nil
}

func totalPages(total, limit int64) int64 {
	if limit <= 0 {
		return 0
	}
	pages := total / limit
	if total%limit > 0 {
		pages++
	}
	return pages
}
