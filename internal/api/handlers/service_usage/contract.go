package service_usage

import (
	"context"

	"github.com/m04kA/HMS-FrontdeskService/internal/service/serviceusage/models"
)

type ServiceUsageService interface {
	Create(ctx context.Context, req *models.CreateUsageRequest) (*models.UsageResponse, error)
	List(ctx context.Context, req *models.ListUsageRequest) (*models.UsageListResponse, error)
	ListByBooking(ctx context.Context, bookingID int64) (*models.UsageListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
