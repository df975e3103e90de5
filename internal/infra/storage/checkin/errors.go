package checkin

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия мастера заселения не найдена
	ErrSessionNotFound = errors.New("storage/checkin: check-in session not found")

	// ErrRecordNotFound возвращается, когда запись о заселении не найдена
	ErrRecordNotFound = errors.New("storage/checkin: check-in record not found")

	// ErrSessionCompleted возвращается при попытке изменить завершенную сессию
	ErrSessionCompleted = errors.New("storage/checkin: check-in session already completed")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("storage/checkin: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("storage/checkin: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования строки результата
	ErrScanRow = errors.New("storage/checkin: failed to scan row")
)
