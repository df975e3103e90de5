package models

import (
	"errors"
	"time"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid task status")

	// ErrInvalidTaskType возвращается при некорректном типе задачи
	ErrInvalidTaskType = errors.New("invalid task type")
)

// Request модели

// CreateTaskRequest запрос на создание задачи уборки
type CreateTaskRequest struct {
	RoomID       int64   `json:"roomId"`
	TaskType     string  `json:"taskType"`
	AssignedTo   *int64  `json:"assignedTo,omitempty"`
	Notes        *string `json:"notes,omitempty"`
	ScheduledFor string  `json:"scheduledFor"` // "2026-08-29"
}

// ListTasksRequest запрос на получение списка задач
type ListTasksRequest struct {
	RoomID     *int64  `json:"roomId,omitempty"`
	Status     *string `json:"status,omitempty"`
	AssignedTo *int64  `json:"assignedTo,omitempty"`
	Page       int64   `json:"page"`
	Limit      int64   `json:"limit"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListTasksRequest) ToDomainFilter() (domain.HousekeepingFilter, error) {
	filter := domain.HousekeepingFilter{
		RoomID:     r.RoomID,
		AssignedTo: r.AssignedTo,
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
		status := domain.HousekeepingStatus(*r.Status)
		if !domain.ValidHousekeepingStatus(status) {
			return filter, ErrInvalidStatus
		}
		filter.Status = &status
	}

	return filter, nil
}

// UpdateTaskStatusRequest запрос на обновление статуса задачи
type UpdateTaskStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// TaskResponse ответ с данными задачи
type TaskResponse struct {
	ID           int64   `json:"id"`
	RoomID       int64   `json:"roomId"`
	RoomNumber   string  `json:"roomNumber"`
	TaskType     string  `json:"taskType"`
	Status       string  `json:"status"`
	AssignedTo   *int64  `json:"assignedTo,omitempty"`
	Notes        *string `json:"notes,omitempty"`
	ScheduledFor string  `json:"scheduledFor"`

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

// TaskListResponse ответ со списком задач
type TaskListResponse struct {
	Tasks      []TaskResponse `json:"tasks"`
	Pagination Pagination     `json:"pagination"`
}

// Методы конвертации

// FromDomainTask конвертирует domain модель в DTO
func FromDomainTask(t *domain.HousekeepingTask) *TaskResponse {
	if t == nil {
		return nil
	}

	return &TaskResponse{
		ID:           t.ID,
		RoomID:       t.RoomID,
		RoomNumber:   t.RoomNumber,
		TaskType:     string(t.TaskType),
		Status:       string(t.Status),
		AssignedTo:   t.AssignedTo,
		Notes:        t.Notes,
		ScheduledFor: t.ScheduledFor.Format(domain.DateFormat),
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

// FromDomainTaskList конвертирует список domain моделей в DTO
func FromDomainTaskList(tasks []*domain.HousekeepingTask, page, limit, total int64) *TaskListResponse {
	resp := &TaskListResponse{
		Tasks: make([]TaskResponse, 0, len(tasks)),
		Pagination: Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages(total, limit),
		},
	}

	for _, t := range tasks {
		if taskResp := FromDomainTask(t); taskResp != nil {
			resp.Tasks = append(resp.Tasks, *taskResp)
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
