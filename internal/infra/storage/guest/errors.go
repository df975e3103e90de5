package guest

import "errors"

var (
	// ErrGuestNotFound возвращается, когда гость не найден
	ErrGuestNotFound = errors.New("storage/guest: guest not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("storage/guest: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("storage/guest: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования строки результата
	ErrScanRow = errors.New("storage/guest: failed to scan row")
)
