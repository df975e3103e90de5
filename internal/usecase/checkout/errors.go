package checkout

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("checkout: booking not found")

	// ErrBookingNotEligible возвращается, когда статус бронирования не допускает выезд
	ErrBookingNotEligible = errors.New("checkout: booking is not checked in")

	// ErrNegativeBalance возвращается, когда итоговый платеж превышает задолженность
	ErrNegativeBalance = errors.New("checkout: final payment exceeds balance due")

	// ErrPaymentDeclined возвращается, когда шлюз отклонил платеж
	ErrPaymentDeclined = errors.New("checkout: payment declined")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("checkout: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("checkout: internal error")
)
