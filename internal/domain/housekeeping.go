package domain

import "time"

// HousekeepingStatus статус задачи уборки
type HousekeepingStatus string

const (
	TaskPending    HousekeepingStatus = "pending"
	TaskInProgress HousekeepingStatus = "in_progress"
	TaskDone       HousekeepingStatus = "done"
)

// HousekeepingTaskType тип задачи
type HousekeepingTaskType string

const (
	TaskCheckoutCleaning HousekeepingTaskType = "checkout_cleaning"
	TaskDailyCleaning    HousekeepingTaskType = "daily_cleaning"
	TaskMaintenance      HousekeepingTaskType = "maintenance"
)

// HousekeepingTask задача для службы уборки
// Задача checkout_cleaning создается автоматически при выезде гостя
type HousekeepingTask struct {
	ID           int64
	RoomID       int64
	RoomNumber   string // Denormalized for list rendering
	TaskType     HousekeepingTaskType
	Status       HousekeepingStatus
	AssignedTo   *int64
	Notes        *string
	ScheduledFor time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsOpen returns true while the task still needs work
func (t *HousekeepingTask) IsOpen() bool {
	return t.Status != TaskDone
}

// ValidHousekeepingStatus проверяет, что статус известен сервису
func ValidHousekeepingStatus(s HousekeepingStatus) bool {
	switch s {
	case TaskPending, TaskInProgress, TaskDone:
		return true
	default:
		return false
	}
}

// HousekeepingFilter фильтр для списка задач
type HousekeepingFilter struct {
	RoomID     *int64
	Status     *HousekeepingStatus
	AssignedTo *int64
	Page       int64
	Limit      int64
}
