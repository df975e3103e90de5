package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("storage/booking: booking not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("storage/booking: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("storage/booking: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования строки результата
	ErrScanRow = errors.New("storage/booking: failed to scan row")
)
