package convert_prebooking

import "errors"

var (
	// ErrPreBookingNotFound возвращается, когда заявка не найдена
	ErrPreBookingNotFound = errors.New("convert_prebooking: pre-booking not found")

	// ErrAlreadyConverted возвращается при повторной конвертации заявки
	ErrAlreadyConverted = errors.New("convert_prebooking: pre-booking already converted or cancelled")

	// ErrNoRoomsAvailable возвращается, когда нет свободного номера запрошенной категории
	ErrNoRoomsAvailable = errors.New("convert_prebooking: no rooms of the requested type are available")

	// ErrRoomNotAvailable возвращается, когда выбранный номер не свободен
	// или не относится к запрошенной категории
	ErrRoomNotAvailable = errors.New("convert_prebooking: requested room is not available for this category")

	// ErrRoomTypeNotFound возвращается, когда категория номера не найдена
	ErrRoomTypeNotFound = errors.New("convert_prebooking: room type not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("convert_prebooking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("convert_prebooking: internal error")
)
