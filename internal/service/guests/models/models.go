package models

import (
	"time"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
)

// Request модели

// CreateGuestRequest запрос на создание гостя
type CreateGuestRequest struct {
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	Email          *string `json:"email,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	Nationality    *string `json:"nationality,omitempty"`
	DocumentType   *string `json:"documentType,omitempty"`
	DocumentNumber *string `json:"documentNumber,omitempty"`
	Address        *string `json:"address,omitempty"`
	Notes          *string `json:"notes,omitempty"`
}

// ToDomainGuest конвертирует запрос в domain модель
func (r *CreateGuestRequest) ToDomainGuest() *domain.Guest {
	return &domain.Guest{
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		Phone:          r.Phone,
		Nationality:    r.Nationality,
		DocumentType:   r.DocumentType,
		DocumentNumber: r.DocumentNumber,
		Address:        r.Address,
		Notes:          r.Notes,
	}
}

// UpdateGuestRequest запрос на обновление гостя
type UpdateGuestRequest = CreateGuestRequest

// ListGuestsRequest запрос на получение списка гостей
type ListGuestsRequest struct {
	// Search текстовый поиск по имени, email и номеру документа
	// Применяется к загруженной странице
	Search *string `json:"search,omitempty"`
	Page   int64   `json:"page"`
	Limit  int64   `json:"limit"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListGuestsRequest) ToDomainFilter() domain.GuestsFilter {
	filter := domain.GuestsFilter{
		Page:  r.Page,
		Limit: r.Limit,
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

	return filter
}

// Response модели

// GuestResponse ответ с данными гостя
type GuestResponse struct {
	ID             int64   `json:"id"`
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	Email          *string `json:"email,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	Nationality    *string `json:"nationality,omitempty"`
	DocumentType   *string `json:"documentType,omitempty"`
	DocumentNumber *string `json:"documentNumber,omitempty"`
	Address        *string `json:"address,omitempty"`
	Notes          *string `json:"notes,omitempty"`

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

// GuestListResponse ответ со списком гостей
type GuestListResponse struct {
	Guests     []GuestResponse `json:"guests"`
	Pagination Pagination      `json:"pagination"`
}

// Методы конвертации

// FromDomainGuest конвертирует domain модель в DTO
func FromDomainGuest(g *domain.Guest) *GuestResponse {
	if g == nil {
		return nil
	}

	return &GuestResponse{
		ID:             g.ID,
		FirstName:      g.FirstName,
		LastName:       g.LastName,
		Email:          g.Email,
		Phone:          g.Phone,
		Nationality:    g.Nationality,
		DocumentType:   g.DocumentType,
		DocumentNumber: g.DocumentNumber,
		Address:        g.Address,
		Notes:          g.Notes,
		CreatedAt:      g.CreatedAt,
		UpdatedAt:      g.UpdatedAt,
	}
}

// FromDomainGuestList конвертирует список domain моделей в DTO
func FromDomainGuestList(guests []*domain.Guest, page, limit, total int64) *GuestListResponse {
	resp := &GuestListResponse{
		Guests: make([]GuestResponse, 0, len(guests)),
		Pagination: Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages(total, limit),
		},
	}

	for _, g := range guests {
		if guestResp := FromDomainGuest(g); guestResp != nil {
			resp.Guests = append(resp.Guests, *guestResp)
		}
	}

	return resp
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
