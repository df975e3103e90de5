package check_in

import (
	"time"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
)

// StepData данные текущего шага мастера
// Заполняются только поля, относящиеся к активному шагу
type StepData struct {
	// guest_verification
	IDType     *string `json:"idType,omitempty"`
	IDNumber   *string `json:"idNumber,omitempty"`
	IDVerified *bool   `json:"idVerified,omitempty"`

	// payment_acknowledgment
	DepositConfirmed *bool `json:"depositConfirmed,omitempty"`

	// room_assignment
	AssignedRoomID *int64 `json:"assignedRoomId,omitempty"`
	TermsAccepted  *bool  `json:"termsAccepted,omitempty"`

	// final_review
	SignatureRef    *string `json:"signatureRef,omitempty"`
	PrivacyAccepted *bool   `json:"privacyAccepted,omitempty"`

	Notes *string `json:"notes,omitempty"`
}

// NextRequest запрос на переход к следующему шагу
type NextRequest struct {
	BookingID int64
	Data      StepData
}

// SessionResponse состояние сессии мастера
type SessionResponse struct {
	BookingID int64  `json:"bookingId"`
	Step      int    `json:"step"`
	StepName  string `json:"stepName"`

	IDType           *string `json:"idType,omitempty"`
	IDNumber         *string `json:"idNumber,omitempty"`
	IDVerified       bool    `json:"idVerified"`
	DepositConfirmed bool    `json:"depositConfirmed"`
	AssignedRoomID   *int64  `json:"assignedRoomId,omitempty"`
	TermsAccepted    bool    `json:"termsAccepted"`
	SignatureRef     *string `json:"signatureRef,omitempty"`
	PrivacyAccepted  bool    `json:"privacyAccepted"`
	Notes            *string `json:"notes,omitempty"`

	// AdvancePayment сумма аванса из бронирования (шаг подтверждения оплаты)
	AdvancePayment string `json:"advancePayment"`

	StepComplete bool       `json:"stepComplete"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
}

// CompleteResponse итог успешного заселения
type CompleteResponse struct {
	BookingID   int64     `json:"bookingId"`
	RecordID    int64     `json:"recordId"`
	RoomID      int64     `json:"roomId"`
	RoomNumber  string    `json:"roomNumber"`
	CheckedInAt time.Time `json:"checkedInAt"`
}

// toSessionResponse собирает ответ из сессии и бронирования
func toSessionResponse(s *domain.CheckInSession, b *domain.Booking) *SessionResponse {
	return &SessionResponse{
		BookingID:        s.BookingID,
		Step:             int(s.Step),
		StepName:         s.Step.String(),
		IDType:           s.IDType,
		IDNumber:         s.IDNumber,
		IDVerified:       s.IDVerified,
		DepositConfirmed: s.DepositConfirmed,
		AssignedRoomID:   s.AssignedRoomID,
		TermsAccepted:    s.TermsAccepted,
		SignatureRef:     s.SignatureRef,
		PrivacyAccepted:  s.PrivacyAccepted,
		Notes:            s.Notes,
		AdvancePayment:   b.AdvancePayment.StringFixed(2),
		StepComplete:     s.StepComplete(),
		CompletedAt:      s.CompletedAt,
	}
}
