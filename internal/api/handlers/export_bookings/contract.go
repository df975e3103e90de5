package export_bookings

import (
	"context"

	"github.com/m04kA/HMS-FrontdeskService/internal/service/bookings/models"
)

type BookingService interface {
	ExportCSV(ctx context.Context, req *models.ListBookingsRequest) ([]byte, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
