package housekeeping_tasks

import (
	"context"

	"github.com/m04kA/HMS-FrontdeskService/internal/service/housekeeping/models"
)

type HousekeepingService interface {
	Create(ctx context.Context, req *models.CreateTaskRequest) (*models.TaskResponse, error)
	List(ctx context.Context, req *models.ListTasksRequest) (*models.TaskListResponse, error)
	UpdateStatus(ctx context.Context, id int64, req *models.UpdateTaskStatusRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
