package guests

import (
	"context"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
)

// GuestRepository интерфейс репозитория гостей
type GuestRepository interface {
	Create(ctx context.Context, g *domain.Guest) (*domain.Guest, error)
	GetByID(ctx context.Context, id int64) (*domain.Guest, error)
	List(ctx context.Context, filter domain.GuestsFilter) ([]*domain.Guest, int64, error)
	Update(ctx context.Context, g *domain.Guest) error
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
