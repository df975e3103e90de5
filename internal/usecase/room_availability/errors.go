package room_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("room_availability: invalid input data")

	// ErrRangeTooWide возвращается, когда запрошенный период слишком длинный
	ErrRangeTooWide = errors.New("room_availability: requested date range is too wide")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("room_availability: internal error")
)
