package housekeeping

import "errors"

var (
	// ErrTaskNotFound возвращается, когда задача уборки не найдена
	ErrTaskNotFound = errors.New("storage/housekeeping: task not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("storage/housekeeping: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("storage/housekeeping: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования строки результата
	ErrScanRow = errors.New("storage/housekeeping: failed to scan row")
)
