package checkout

import (
	"context"

	checkoutUC "github.com/m04kA/HMS-FrontdeskService/internal/usecase/checkout"
)

type CheckoutUseCase interface {
	GetFolio(ctx context.Context, bookingID int64) (*checkoutUC.FolioResponse, error)
	Execute(ctx context.Context, req *checkoutUC.ExecuteRequest) (*checkoutUC.ExecuteResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
