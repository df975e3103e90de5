package housekeeping

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
	taskRepo "github.com/m04kA/HMS-FrontdeskService/internal/infra/storage/housekeeping"
	roomRepo "github.com/m04kA/HMS-FrontdeskService/internal/infra/storage/room"
	"github.com/m04kA/HMS-FrontdeskService/internal/service/housekeeping/models"
)

// Service сервис для работы с задачами уборки
type Service struct {
	taskRepo TaskRepository
	roomRepo RoomRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса уборки
func NewService(taskRepo TaskRepository, roomRepo RoomRepository, logger Logger) *Service {
	return &Service{
		taskRepo: taskRepo,
		roomRepo: roomRepo,
		logger:   logger,
	}
}

// Create создает задачу уборки
func (s *Service) Create(ctx context.Context, req *models.CreateTaskRequest) (*models.TaskResponse, error) {
	s.logger.Info("Create: creating task room=%d type=%s", req.RoomID, req.TaskType)

	taskType := domain.HousekeepingTaskType(req.TaskType)
	switch taskType {
	case domain.TaskCheckoutCleaning, domain.TaskDailyCleaning, domain.TaskMaintenance:
	default:
		s.logger.Warn("Create: invalid task type=%s", req.TaskType)
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, req.TaskType)
	}

	scheduledFor, err := time.Parse(domain.DateFormat, req.ScheduledFor)
	if err != nil {
		s.logger.Warn("Create: invalid scheduled_for=%s", req.ScheduledFor)
		return nil, fmt.Errorf("%w: invalid scheduled date", ErrInvalidInput)
	}

	room, err := s.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("Create: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("Create: room lookup error for id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: Create - room lookup error: %v", ErrInternal, err)
	}

	task := &domain.HousekeepingTask{
		RoomID:       room.ID,
		RoomNumber:   room.Number,
		TaskType:     taskType,
		Status:       domain.TaskPending,
		AssignedTo:   req.AssignedTo,
		Notes:        req.Notes,
		ScheduledFor: scheduledFor,
	}

	created, err := s.taskRepo.Create(ctx, task)
	if err != nil {
		s.logger.Error("Create: repository error for room=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created task id=%d", created.ID)
	return models.FromDomainTask(created), nil
}

// List получает страницу задач с фильтрацией
func (s *Service) List(ctx context.Context, req *models.ListTasksRequest) (*models.TaskListResponse, error) {
	s.logger.Info("List: fetching tasks page=%d limit=%d", req.Page, req.Limit)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	tasks, total, err := s.taskRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d tasks (total=%d)", len(tasks), total)
	return models.FromDomainTaskList(tasks, filter.Page, filter.Limit, total), nil
}

// UpdateStatus обновляет статус задачи
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateTaskStatusRequest) error {
	s.logger.Info("UpdateStatus: updating task id=%d to status=%s", id, req.Status)

	status := domain.HousekeepingStatus(req.Status)
	if !domain.ValidHousekeepingStatus(status) {
		s.logger.Warn("UpdateStatus: invalid status=%s for task id=%d", req.Status, id)
		return ErrInvalidStatus
	}

	if err := s.taskRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, taskRepo.ErrTaskNotFound) {
			s.logger.Warn("UpdateStatus: task id=%d not found", id)
			return ErrTaskNotFound
		}
		s.logger.Error("UpdateStatus: repository error for task id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: updated task id=%d to status=%s", id, status)
	return nil
}
