package domain

import "github.com/shopspring/decimal"

// Pagination defaults
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxChargeDescriptionLength  = 200
)

// AdvancePaymentRate доля аванса при конвертации заявки в бронирование (10%)
var AdvancePaymentRate = decimal.NewFromFloat(0.10)

// ActiveBookingStatuses статусы, занимающие номерной фонд
// Используются при поиске конфликтов по датам
var ActiveBookingStatuses = []BookingStatus{
	StatusPreBooked,
	StatusBooked,
	StatusCheckedIn,
}

// InactiveBookingStatuses статусы, не занимающие номерной фонд
var InactiveBookingStatuses = []BookingStatus{
	StatusCheckedOut,
	StatusCancelled,
}
