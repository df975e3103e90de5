package serviceusage

import "errors"

var (
	// ErrUsageNotFound возвращается, когда запись об услуге не найдена
	ErrUsageNotFound = errors.New("storage/serviceusage: service usage not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("storage/serviceusage: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("storage/serviceusage: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования строки результата
	ErrScanRow = errors.New("storage/serviceusage: failed to scan row")
)
