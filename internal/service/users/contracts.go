package users

import (
	"context"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
)

// UserRepository интерфейс репозитория сотрудников
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	Deactivate(ctx context.Context, id int64) error
}

// TokenIssuer интерфейс выпуска токенов доступа
type TokenIssuer interface {
	IssueToken(userID int64, email string, role string) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
