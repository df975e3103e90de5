package prebooking

import "errors"

var (
	// ErrPreBookingNotFound возвращается, когда заявка не найдена
	ErrPreBookingNotFound = errors.New("storage/prebooking: pre-booking not found")

	// ErrAlreadyConverted возвращается, когда заявка уже конвертирована или отменена
	ErrAlreadyConverted = errors.New("storage/prebooking: pre-booking is not pending")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("storage/prebooking: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("storage/prebooking: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования строки результата
	ErrScanRow = errors.New("storage/prebooking: failed to scan row")
)
