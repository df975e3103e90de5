package list_pre_bookings

import (
	"context"

	"github.com/m04kA/HMS-FrontdeskService/internal/service/prebookings/models"
)

type PreBookingService interface {
	List(ctx context.Context, req *models.ListPreBookingsRequest) (*models.PreBookingListResponse, error)
	GetByID(ctx context.Context, id int64) (*models.PreBookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
