package prebookings

import "errors"

var (
	// ErrPreBookingNotFound возвращается, когда заявка не найдена
	ErrPreBookingNotFound = errors.New("pre-booking not found")

	// ErrGuestNotFound возвращается, когда гость не найден
	ErrGuestNotFound = errors.New("guest not found")

	// ErrAlreadyConverted возвращается, когда заявка уже конвертирована или отменена
	ErrAlreadyConverted = errors.New("pre-booking already converted or cancelled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
