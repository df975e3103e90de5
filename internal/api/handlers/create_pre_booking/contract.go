package create_pre_booking

import (
	"context"

	"github.com/m04kA/HMS-FrontdeskService/internal/service/prebookings/models"
)

type PreBookingService interface {
	Create(ctx context.Context, req *models.CreatePreBookingRequest) (*models.PreBookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
