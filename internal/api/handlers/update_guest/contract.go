package update_guest

import (
	"context"

	"github.com/m04kA/HMS-FrontdeskService/internal/service/guests/models"
)

type GuestService interface {
	Update(ctx context.Context, id int64, req *models.UpdateGuestRequest) (*models.GuestResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
