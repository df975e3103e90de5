package users

import (
	"context"

	"github.com/m04kA/HMS-FrontdeskService/internal/service/users/models"
)

type UserService interface {
	Create(ctx context.Context, req *models.CreateUserRequest) (*models.UserResponse, error)
	GetByID(ctx context.Context, id int64) (*models.UserResponse, error)
	List(ctx context.Context) (*models.UserListResponse, error)
	Update(ctx context.Context, id int64, req *models.UpdateUserRequest) (*models.UserResponse, error)
	Deactivate(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
