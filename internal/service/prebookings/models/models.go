package models

import (
	"errors"
	"time"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid pre-booking status")
)

// Request модели

// CreatePreBookingRequest запрос на создание заявки
type CreatePreBookingRequest struct {
	ReferenceCode string  `json:"referenceCode"`
	CustomerID    int64   `json:"customerId"`
	GuestID       int64   `json:"guestId"`
	BranchID      int64   `json:"branchId"`
	RoomTypeID    int64   `json:"roomTypeId"`
	NumberOfRooms int     `json:"numberOfRooms"`
	CheckInDate   string  `json:"checkInDate"`
	CheckOutDate  string  `json:"checkOutDate"`
	Adults        int     `json:"adults"`
	Children      int     `json:"children"`
	Notes         *string `json:"notes,omitempty"`
}

// ToDomainPreBooking конвертирует запрос в domain модель
func (r *CreatePreBookingRequest) ToDomainPreBooking() (*domain.PreBooking, error) {
	checkIn, err := time.Parse(domain.DateFormat, r.CheckInDate)
	if err != nil {
		return nil, err
	}

	checkOut, err := time.Parse(domain.DateFormat, r.CheckOutDate)
	if err != nil {
		return nil, err
	}

	numberOfRooms := r.NumberOfRooms
	if numberOfRooms < 1 {
		numberOfRooms = 1
	}

	return &domain.PreBooking{
		ReferenceCode: r.ReferenceCode,
		CustomerID:    r.CustomerID,
		GuestID:       r.GuestID,
		BranchID:      r.BranchID,
		RoomTypeID:    r.RoomTypeID,
		NumberOfRooms: numberOfRooms,
		CheckInDate:   checkIn,
		CheckOutDate:  checkOut,
		Adults:        r.Adults,
		Children:      r.Children,
		Status:        domain.PreBookingPending,
		Notes:         r.Notes,
	}, nil
}

// ListPreBookingsRequest запрос на получение списка заявок
type ListPreBookingsRequest struct {
	BranchID   *int64  `json:"branchId,omitempty"`
	RoomTypeID *int64  `json:"roomTypeId,omitempty"`
	Status     *string `json:"status,omitempty"`
	StartDate  *string `json:"startDate,omitempty"`
	EndDate    *string `json:"endDate,omitempty"`
	// Search текстовый поиск по имени гостя, заказчика и коду заявки
	Search *string `json:"search,omitempty"`
	Page   int64   `json:"page"`
	Limit  int64   `json:"limit"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListPreBookingsRequest) ToDomainFilter() (domain.PreBookingsFilter, error) {
	filter := domain.PreBookingsFilter{
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
		status, err := ToDomainPreBookingStatus(*r.Status)
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

// Response модели

// PreBookingResponse ответ с данными заявки
type PreBookingResponse struct {
	ID            int64   `json:"id"`
	ReferenceCode string  `json:"referenceCode"`
	CustomerID    int64   `json:"customerId"`
	GuestID       int64   `json:"guestId"`
	BranchID      int64   `json:"branchId"`
	RoomTypeID    int64   `json:"roomTypeId"`
	RoomTypeName  string  `json:"roomTypeName"`
	NumberOfRooms int     `json:"numberOfRooms"`
	IsGroup       bool    `json:"isGroup"`
	CheckInDate   string  `json:"checkInDate"`
	CheckOutDate  string  `json:"checkOutDate"`
	Nights        int     `json:"nights"`
	Adults        int     `json:"adults"`
	Children      int     `json:"children"`
	Status        string  `json:"status"`
	GuestName     string  `json:"guestName"`
	CustomerName  string  `json:"customerName"`
	Notes         *string `json:"notes,omitempty"`

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

// PreBookingListResponse ответ со списком заявок
type PreBookingListResponse struct {
	PreBookings []PreBookingResponse `json:"preBookings"`
	Pagination  Pagination           `json:"pagination"`
}

// Методы конвертации

// FromDomainPreBooking конвертирует domain модель в DTO
func FromDomainPreBooking(p *domain.PreBooking) *PreBookingResponse {
	if p == nil {
		return nil
	}

	return &PreBookingResponse{
		ID:            p.ID,
		ReferenceCode: p.ReferenceCode,
		CustomerID:    p.CustomerID,
		GuestID:       p.GuestID,
		BranchID:      p.BranchID,
		RoomTypeID:    p.RoomTypeID,
		RoomTypeName:  p.RoomTypeName,
		NumberOfRooms: p.NumberOfRooms,
		IsGroup:       p.IsGroup(),
		CheckInDate:   p.CheckInDate.Format(domain.DateFormat),
		CheckOutDate:  p.CheckOutDate.Format(domain.DateFormat),
		Nights:        p.NightCount(),
		Adults:        p.Adults,
		Children:      p.Children,
		Status:        string(p.Status),
		GuestName:     p.GuestName,
		CustomerName:  p.CustomerName,
		Notes:         p.Notes,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// FromDomainPreBookingList конвертирует список domain моделей в DTO
func FromDomainPreBookingList(preBookings []*domain.PreBooking, page, limit, total int64) *PreBookingListResponse {
	resp := &PreBookingListResponse{
		PreBookings: make([]PreBookingResponse, 0, len(preBookings)),
		Pagination: Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages(total, limit),
		},
	}

	for _, p := range preBookings {
		if preBookingResp := FromDomainPreBooking(p); preBookingResp != nil {
			resp.PreBookings = append(resp.PreBookings, *preBookingResp)
		}
	}

	return resp
}

// ToDomainPreBookingStatus конвертирует строку в domain.PreBookingStatus с валидацией
func ToDomainPreBookingStatus(status string) (domain.PreBookingStatus, error) {
	s := domain.PreBookingStatus(status)

	validStatuses := []domain.PreBookingStatus{
		domain.PreBookingPending,
		domain.PreBookingConverted,
		domain.PreBookingCancelled,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
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
