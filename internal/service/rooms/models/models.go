package models

import (
	"errors"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid room status")
)

// Request модели

// ListRoomsRequest запрос на получение списка номеров
type ListRoomsRequest struct {
	BranchID   *int64  `json:"branchId,omitempty"`
	RoomTypeID *int64  `json:"roomTypeId,omitempty"`
	Status     *string `json:"status,omitempty"`
	Page       int64   `json:"page"`
	Limit      int64   `json:"limit"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListRoomsRequest) ToDomainFilter() (domain.RoomsFilter, error) {
	filter := domain.RoomsFilter{
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
		status, err := ToDomainRoomStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// UpdateRoomStatusRequest запрос на обновление статуса номера
type UpdateRoomStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// RoomResponse ответ с данными номера
type RoomResponse struct {
	ID           int64  `json:"id"`
	Number       string `json:"number"`
	RoomTypeID   int64  `json:"roomTypeId"`
	RoomTypeName string `json:"roomTypeName"`
	BranchID     int64  `json:"branchId"`
	Floor        int    `json:"floor"`
	Status       string `json:"status"`
	DailyRate    string `json:"dailyRate"`
	Capacity     int    `json:"capacity"`
}

// Pagination метаданные страницы
type Pagination struct {
	Page       int64 `json:"page"`
	Limit      int64 `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// RoomListResponse ответ со списком номеров
type RoomListResponse struct {
	Rooms      []RoomResponse `json:"rooms"`
	Pagination Pagination     `json:"pagination"`
}

// RoomTypeResponse ответ с данными категории номера
type RoomTypeResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	DailyRate string `json:"dailyRate"`
	Capacity  int    `json:"capacity"`
}

// RoomTypeListResponse ответ со списком категорий
type RoomTypeListResponse struct {
	RoomTypes []RoomTypeResponse `json:"roomTypes"`
}

// Методы конвертации

// FromDomainRoom конвертирует domain модель в DTO
func FromDomainRoom(r *domain.Room) *RoomResponse {
	if r == nil {
		return nil
	}

	return &RoomResponse{
		ID:           r.ID,
		Number:       r.Number,
		RoomTypeID:   r.RoomTypeID,
		RoomTypeName: r.RoomTypeName,
		BranchID:     r.BranchID,
		Floor:        r.Floor,
		Status:       string(r.Status),
		DailyRate:    r.DailyRate.StringFixed(2),
		Capacity:     r.Capacity,
	}
}

// FromDomainRoomList конвертирует список domain моделей в DTO
func FromDomainRoomList(rooms []*domain.Room, page, limit, total int64) *RoomListResponse {
	resp := &RoomListResponse{
		Rooms: make([]RoomResponse, 0, len(rooms)),
		Pagination: Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages(total, limit),
		},
	}

	for _, room := range rooms {
		if roomResp := FromDomainRoom(room); roomResp != nil {
			resp.Rooms = append(resp.Rooms, *roomResp)
		}
	}

	return resp
}

// FromDomainRoomType конвертирует категорию номера в DTO
func FromDomainRoomType(t *domain.RoomType) *RoomTypeResponse {
	if t == nil {
		return nil
	}

	return &RoomTypeResponse{
		ID:        t.ID,
		Name:      t.Name,
		DailyRate: t.DailyRate.StringFixed(2),
		Capacity:  t.Capacity,
	}
}

// FromDomainRoomTypeList конвертирует список категорий в DTO
func FromDomainRoomTypeList(types []*domain.RoomType) *RoomTypeListResponse {
	resp := &RoomTypeListResponse{
		RoomTypes: make([]RoomTypeResponse, 0, len(types)),
	}

	for _, t := range types {
		if typeResp := FromDomainRoomType(t); typeResp != nil {
			resp.RoomTypes = append(resp.RoomTypes, *typeResp)
		}
	}

	return resp
}

// ToDomainRoomStatus конвертирует строку в domain.RoomStatus с валидацией
func ToDomainRoomStatus(status string) (domain.RoomStatus, error) {
	s := domain.RoomStatus(status)

	validStatuses := []domain.RoomStatus{
		domain.RoomAvailable,
		domain.RoomOccupied,
		domain.RoomMaintenance,
		domain.RoomReserved,
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
