package domain

import "time"

// CheckInStep шаг мастера заселения
// Шаги строго линейны: без ветвлений и пропусков
type CheckInStep int

const (
	StepGuestVerification CheckInStep = iota + 1
	StepPaymentAcknowledgment
	StepRoomAssignment
	StepFinalReview
)

// String returns the step name for logging and API responses
func (s CheckInStep) String() string {
	switch s {
	case StepGuestVerification:
		return "guest_verification"
	case StepPaymentAcknowledgment:
		return "payment_acknowledgment"
	case StepRoomAssignment:
		return "room_assignment"
	case StepFinalReview:
		return "final_review"
	default:
		return "unknown"
	}
}

// CheckInSession состояние мастера заселения одного бронирования
// Хранится в БД: падение терминала стойки регистрации не должно
// терять наполовину заполненное заселение
type CheckInSession struct {
	ID        int64
	BookingID int64
	Step      CheckInStep

	// GuestVerification
	IDType     *string
	IDNumber   *string
	IDVerified bool

	// PaymentAcknowledgment (сумма аванса только читается из бронирования)
	DepositConfirmed bool

	// RoomAssignment
	AssignedRoomID *int64
	TermsAccepted  bool

	// FinalReview
	SignatureRef    *string
	PrivacyAccepted bool

	Notes       *string
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsFirstStep returns true on the first wizard step
func (s *CheckInSession) IsFirstStep() bool {
	return s.Step == StepGuestVerification
}

// IsFinalStep returns true on the last wizard step
func (s *CheckInSession) IsFinalStep() bool {
	return s.Step == StepFinalReview
}

// IsCompleted returns true once the wizard has been submitted
func (s *CheckInSession) IsCompleted() bool {
	return s.CompletedAt != nil
}

// StepComplete проверяет guard текущего шага
// Переход вперед разрешен только когда guard выполнен
func (s *CheckInSession) StepComplete() bool {
	switch s.Step {
	case StepGuestVerification:
		return s.IDType != nil && *s.IDType != "" &&
			s.IDNumber != nil && *s.IDNumber != "" &&
			s.IDVerified
	case StepPaymentAcknowledgment:
		return s.DepositConfirmed
	case StepRoomAssignment:
		return s.AssignedRoomID != nil && s.TermsAccepted
	case StepFinalReview:
		return s.SignatureRef != nil && *s.SignatureRef != "" && s.PrivacyAccepted
	default:
		return false
	}
}

// CheckInRecord итоговая запись о заселении, 1:1 с бронированием
type CheckInRecord struct {
	ID                  int64
	BookingID           int64
	IDType              string
	IDNumber            string
	SignatureRef        string
	RoomAssignmentNotes *string
	CheckedInAt         time.Time
	CreatedAt           time.Time
}
