package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/HMS-FrontdeskService/pkg/ptr"
)

func TestStepComplete_GuestVerification(t *testing.T) {
	s := &CheckInSession{Step: StepGuestVerification}
	assert.False(t, s.StepComplete())

	s.IDType = ptr.Ptr("passport")
	s.IDNumber = ptr.Ptr("4509 123456")
	assert.False(t, s.StepComplete(), "без флага верификации guard не выполнен")

	s.IDVerified = true
	assert.True(t, s.StepComplete())

	s.IDNumber = ptr.Ptr("")
	assert.False(t, s.StepComplete(), "пустой номер документа не проходит guard")
}

func TestStepComplete_PaymentAcknowledgment(t *testing.T) {
	s := &CheckInSession{Step: StepPaymentAcknowledgment}
	assert.False(t, s.StepComplete())

	s.DepositConfirmed = true
	assert.True(t, s.StepComplete())
}

func TestStepComplete_RoomAssignment(t *testing.T) {
	s := &CheckInSession{Step: StepRoomAssignment, TermsAccepted: true}
	assert.False(t, s.StepComplete(), "без номера guard не выполнен")

	s.AssignedRoomID = ptr.Ptr(int64(101))
	assert.True(t, s.StepComplete())

	s.TermsAccepted = false
	assert.False(t, s.StepComplete())
}

func TestStepComplete_FinalReview(t *testing.T) {
	s := &CheckInSession{Step: StepFinalReview, PrivacyAccepted: true}
	assert.False(t, s.StepComplete())

	s.SignatureRef = ptr.Ptr("sig-123")
	assert.True(t, s.StepComplete())
}

func TestStepBoundaries(t *testing.T) {
	s := &CheckInSession{Step: StepGuestVerification}
	assert.True(t, s.IsFirstStep())
	assert.False(t, s.IsFinalStep())

	s.Step = StepFinalReview
	assert.False(t, s.IsFirstStep())
	assert.True(t, s.IsFinalStep())
}

func TestStepString(t *testing.T) {
	assert.Equal(t, "guest_verification", StepGuestVerification.String())
	assert.Equal(t, "final_review", StepFinalReview.String())
}
