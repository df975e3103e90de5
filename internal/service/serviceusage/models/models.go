package models

import (
	"time"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
)

// Request модели

// CreateUsageRequest запрос на начисление услуги
type CreateUsageRequest struct {
	BookingID   int64  `json:"bookingId"`
	ServiceName string `json:"serviceName"`
	Department  string `json:"department"`
	Quantity    int    `json:"quantity"`
	Amount      string `json:"amount"`
	UsedAt      string `json:"usedAt,omitempty"` // ISO 8601, по умолчанию текущий момент
}

// ListUsageRequest запрос на получение списка услуг
type ListUsageRequest struct {
	BookingID  *int64  `json:"bookingId,omitempty"`
	Department *string `json:"department,omitempty"`
	Page       int64   `json:"page"`
	Limit      int64   `json:"limit"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListUsageRequest) ToDomainFilter() domain.ServiceUsageFilter {
	filter := domain.ServiceUsageFilter{
		BookingID:  r.BookingID,
		Department: r.Department,
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

	return filter
}

// Response модели

// UsageResponse ответ с данными услуги
type UsageResponse struct {
	ID          int64     `json:"id"`
	BookingID   int64     `json:"bookingId"`
	ServiceName string    `json:"serviceName"`
	Department  string    `json:"department"`
	Quantity    int       `json:"quantity"`
	Amount      string    `json:"amount"`
	UsedAt      time.Time `json:"usedAt"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Pagination метаданные страницы
type Pagination struct {
	Page       int64 `json:"page"`
	Limit      int64 `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// UsageListResponse ответ со списком услуг
type UsageListResponse struct {
	Usages     []UsageResponse `json:"usages"`
	Pagination Pagination      `json:"pagination"`
}

// Методы конвертации

// FromDomainUsage конвертирует domain модель в DTO
func FromDomainUsage(u *domain.ServiceUsage) *UsageResponse {
	if u == nil {
		return nil
	}

	return &UsageResponse{
		ID:          u.ID,
		BookingID:   u.BookingID,
		ServiceName: u.ServiceName,
		Department:  u.Department,
		Quantity:    u.Quantity,
		Amount:      u.Amount.StringFixed(2),
		UsedAt:      u.UsedAt,
		CreatedAt:   u.CreatedAt,
	}
}

// FromDomainUsageList конвертирует список domain моделей в DTO
func FromDomainUsageList(usages []*domain.ServiceUsage, page, limit, total int64) *UsageListResponse {
	resp := &UsageListResponse{
		Usages: make([]UsageResponse, 0, len(usages)),
		Pagination: Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages(total, limit),
		},
	}

	for _, u := range usages {
		if usageResp := FromDomainUsage(u); usageResp != nil {
			resp.Usages = append(resp.Usages, *usageResp)
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
