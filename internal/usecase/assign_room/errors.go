package assign_room

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("assign_room: booking not found")

	// ErrBookingNotEligible возвращается, когда статус бронирования не допускает назначение номера
	ErrBookingNotEligible = errors.New("assign_room: booking status does not allow room assignment")

	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("assign_room: room not found")

	// ErrRoomNotBookable возвращается, когда номер в ремонте или занят
	ErrRoomNotBookable = errors.New("assign_room: room is not available for assignment")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("assign_room: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("assign_room: internal error")
)
