package check_in

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("check_in: booking not found")

	// ErrBookingNotEligible возвращается, когда статус бронирования не допускает заселение
	ErrBookingNotEligible = errors.New("check_in: booking is not eligible for check-in")

	// ErrSessionNotFound возвращается, когда сессия мастера не найдена
	ErrSessionNotFound = errors.New("check_in: check-in session not found")

	// ErrSessionCompleted возвращается при действии над завершенной сессией
	ErrSessionCompleted = errors.New("check_in: check-in session already completed")

	// ErrStepIncomplete возвращается при попытке перейти вперед с невыполненным шагом
	ErrStepIncomplete = errors.New("check_in: current step is not complete")

	// ErrAlreadyFirstStep возвращается при попытке вернуться с первого шага
	ErrAlreadyFirstStep = errors.New("check_in: already at the first step")

	// ErrNotFinalStep возвращается при попытке завершить мастер не с последнего шага
	ErrNotFinalStep = errors.New("check_in: wizard is not at the final step")

	// ErrRoomNotFound возвращается, когда назначаемый номер не найден
	ErrRoomNotFound = errors.New("check_in: room not found")

	// ErrRoomNotBookable возвращается, когда номер недоступен для назначения
	ErrRoomNotBookable = errors.New("check_in: room is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_in: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_in: internal error")
)
