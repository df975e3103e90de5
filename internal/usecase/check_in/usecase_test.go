package check_in

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
	bookingRepo "github.com/m04kA/HMS-FrontdeskService/internal/infra/storage/booking"
	checkinRepo "github.com/m04kA/HMS-FrontdeskService/internal/infra/storage/checkin"
	roomRepo "github.com/m04kA/HMS-FrontdeskService/internal/infra/storage/room"
	"github.com/m04kA/HMS-FrontdeskService/pkg/ptr"
)

// fakeTxManager выполняет callback без реальной транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeCheckInRepo struct {
	sessions map[int64]*domain.CheckInSession
	records  []*domain.CheckInRecord
	nextID   int64
}

func newFakeCheckInRepo() *fakeCheckInRepo {
	return &fakeCheckInRepo{sessions: make(map[int64]*domain.CheckInSession), nextID: 1}
}

func (f *fakeCheckInRepo) CreateSession(_ context.Context, s *domain.CheckInSession) (*domain.CheckInSession, error) {
	copied := *s
	copied.ID = f.nextID
	f.nextID++
	f.sessions[copied.BookingID] = &copied
	return &copied, nil
}

func (f *fakeCheckInRepo) GetSessionByBookingID(_ context.Context, bookingID int64) (*domain.CheckInSession, error) {
	s, ok := f.sessions[bookingID]
	if !ok {
		return nil, checkinRepo.ErrSessionNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeCheckInRepo) UpdateSession(_ context.Context, s *domain.CheckInSession) error {
	stored, ok := f.sessions[s.BookingID]
	if !ok {
		return checkinRepo.ErrSessionNotFound
	}
	if stored.IsCompleted() {
		return checkinRepo.ErrSessionCompleted
	}
	copied := *s
	f.sessions[s.BookingID] = &copied
	return nil
}

func (f *fakeCheckInRepo) CompleteSession(_ context.Context, id int64, completedAt time.Time) error {
	for _, s := range f.sessions {
		if s.ID != id {
			continue
		}
		if s.IsCompleted() {
			return checkinRepo.ErrSessionCompleted
		}
		s.CompletedAt = &completedAt
		return nil
	}
	return checkinRepo.ErrSessionNotFound
}

func (f *fakeCheckInRepo) CreateRecord(_ context.Context, rec *domain.CheckInRecord) (*domain.CheckInRecord, error) {
	copied := *rec
	copied.ID = int64(len(f.records) + 1)
	f.records = append(f.records, &copied)
	return &copied, nil
}

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	f.bookings[id].Status = status
	return nil
}

func (f *fakeBookingRepo) AssignRoom(_ context.Context, id int64, roomID int64, roomNumber string) error {
	f.bookings[id].RoomID = &roomID
	f.bookings[id].RoomNumber = &roomNumber
	return nil
}

type fakeRoomRepo struct {
	rooms map[int64]*domain.Room
}

func (f *fakeRoomRepo) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	r, ok := f.rooms[id]
	if !ok {
		return nil, roomRepo.ErrRoomNotFound
	}
	copied := *r
	return &copied, nil
}

func (f *fakeRoomRepo) UpdateStatus(_ context.Context, id int64, status domain.RoomStatus) error {
	f.rooms[id].Status = status
	return nil
}

type fixedTimeProvider struct{ now time.Time }

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(checkIn *fakeCheckInRepo, bookings *fakeBookingRepo, rooms *fakeRoomRepo) *UseCase {
	uc := NewUseCase(checkIn, bookings, rooms, fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2025, 3, 14, 15, 0, 0, 0, time.UTC)}
	return uc
}

func bookedBooking(id int64) *domain.Booking {
	return &domain.Booking{
		ID:             id,
		ReferenceCode:  "BK-2025-0042",
		Status:         domain.StatusBooked,
		AdvancePayment: decimal.RequireFromString("1500.00"),
	}
}

func TestStart_CreatesSessionAtFirstStep(t *testing.T) {
	checkIn := newFakeCheckInRepo()
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{7: bookedBooking(7)}}
	uc := newTestUseCase(checkIn, bookings, &fakeRoomRepo{})

	resp, err := uc.Start(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, int(domain.StepGuestVerification), resp.Step)
	assert.Equal(t, "guest_verification", resp.StepName)
	assert.Equal(t, "1500.00", resp.AdvancePayment)
	assert.False(t, resp.StepComplete)
}

func TestStart_ResumesExistingSession(t *testing.T) {
	checkIn := newFakeCheckInRepo()
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{7: bookedBooking(7)}}
	uc := newTestUseCase(checkIn, bookings, &fakeRoomRepo{})

	_, err := uc.Start(context.Background(), 7)
	require.NoError(t, err)

	// Оператор закрыл вкладку на втором шаге
	session := checkIn.sessions[7]
	session.Step = domain.StepPaymentAcknowledgment
	session.IDType = ptr.Ptr("passport")
	session.IDNumber = ptr.Ptr("4509 123456")
	session.IDVerified = true

	resp, err := uc.Start(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int(domain.StepPaymentAcknowledgment), resp.Step)
	assert.Equal(t, ptr.Ptr("passport"), resp.IDType)
}

func TestStart_RejectsCheckedOutBooking(t *testing.T) {
	b := bookedBooking(7)
	b.Status = domain.StatusCheckedOut
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{7: b}}
	uc := newTestUseCase(newFakeCheckInRepo(), bookings, &fakeRoomRepo{})

	_, err := uc.Start(context.Background(), 7)
	assert.ErrorIs(t, err, ErrBookingNotEligible)
}

func TestNext_GuardBlocksButKeepsData(t *testing.T) {
	checkIn := newFakeCheckInRepo()
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{7: bookedBooking(7)}}
	uc := newTestUseCase(checkIn, bookings, &fakeRoomRepo{})

	_, err := uc.Start(context.Background(), 7)
	require.NoError(t, err)

	// Документ введен, но не подтвержден: guard не выполнен
	_, err = uc.Next(context.Background(), &NextRequest{
		BookingID: 7,
		Data: StepData{
			IDType:   ptr.Ptr("passport"),
			IDNumber: ptr.Ptr("4509 123456"),
		},
	})
	require.ErrorIs(t, err, ErrStepIncomplete)

	// Введенные данные пережили отказ
	session := checkIn.sessions[7]
	assert.Equal(t, domain.StepGuestVerification, session.Step)
	require.NotNil(t, session.IDNumber)
	assert.Equal(t, "4509 123456", *session.IDNumber)
}

func TestNext_AdvancesWhenGuardSatisfied(t *testing.T) {
	checkIn := newFakeCheckInRepo()
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{7: bookedBooking(7)}}
	uc := newTestUseCase(checkIn, bookings, &fakeRoomRepo{})

	_, err := uc.Start(context.Background(), 7)
	require.NoError(t, err)

	resp, err := uc.Next(context.Background(), &NextRequest{
		BookingID: 7,
		Data: StepData{
			IDType:     ptr.Ptr("passport"),
			IDNumber:   ptr.Ptr("4509 123456"),
			IDVerified: ptr.Ptr(true),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int(domain.StepPaymentAcknowledgment), resp.Step)
}

func TestNext_UnknownRoomRejectedImmediately(t *testing.T) {
	checkIn := newFakeCheckInRepo()
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{7: bookedBooking(7)}}
	rooms := &fakeRoomRepo{rooms: map[int64]*domain.Room{}}
	uc := newTestUseCase(checkIn, bookings, rooms)

	_, err := uc.Start(context.Background(), 7)
	require.NoError(t, err)
	checkIn.sessions[7].Step = domain.StepRoomAssignment

	_, err = uc.Next(context.Background(), &NextRequest{
		BookingID: 7,
		Data: StepData{
			AssignedRoomID: ptr.Ptr(int64(999)),
			TermsAccepted:  ptr.Ptr(true),
		},
	})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestPrevious_RejectedOnFirstStep(t *testing.T) {
	checkIn := newFakeCheckInRepo()
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{7: bookedBooking(7)}}
	uc := newTestUseCase(checkIn, bookings, &fakeRoomRepo{})

	_, err := uc.Start(context.Background(), 7)
	require.NoError(t, err)

	_, err = uc.Previous(context.Background(), 7)
	assert.ErrorIs(t, err, ErrAlreadyFirstStep)
}

func TestPrevious_KeepsEnteredData(t *testing.T) {
	checkIn := newFakeCheckInRepo()
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{7: bookedBooking(7)}}
	uc := newTestUseCase(checkIn, bookings, &fakeRoomRepo{})

	_, err := uc.Start(context.Background(), 7)
	require.NoError(t, err)

	session := checkIn.sessions[7]
	session.Step = domain.StepPaymentAcknowledgment
	session.IDType = ptr.Ptr("passport")
	session.IDNumber = ptr.Ptr("4509 123456")
	session.IDVerified = true
	session.DepositConfirmed = true

	resp, err := uc.Previous(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int(domain.StepGuestVerification), resp.Step)
	assert.True(t, resp.DepositConfirmed, "данные второго шага сохранены при возврате")
}

func TestComplete_AtomicHappyPath(t *testing.T) {
	checkIn := newFakeCheckInRepo()
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{7: bookedBooking(7)}}
	rooms := &fakeRoomRepo{rooms: map[int64]*domain.Room{
		101: {ID: 101, Number: "101", Status: domain.RoomAvailable},
	}}
	uc := newTestUseCase(checkIn, bookings, rooms)

	_, err := uc.Start(context.Background(), 7)
	require.NoError(t, err)

	session := checkIn.sessions[7]
	session.Step = domain.StepFinalReview
	session.IDType = ptr.Ptr("passport")
	session.IDNumber = ptr.Ptr("4509 123456")
	session.IDVerified = true
	session.DepositConfirmed = true
	session.AssignedRoomID = ptr.Ptr(int64(101))
	session.TermsAccepted = true
	session.SignatureRef = ptr.Ptr("sig-abc")
	session.PrivacyAccepted = true

	resp, err := uc.Complete(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, "101", resp.RoomNumber)
	assert.Equal(t, domain.StatusCheckedIn, bookings.bookings[7].Status)
	assert.Equal(t, domain.RoomOccupied, rooms.rooms[101].Status)
	assert.True(t, checkIn.sessions[7].IsCompleted())
	require.Len(t, checkIn.records, 1)
	assert.Equal(t, "4509 123456", checkIn.records[0].IDNumber)
}

func TestComplete_RejectedBeforeFinalStep(t *testing.T) {
	checkIn := newFakeCheckInRepo()
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{7: bookedBooking(7)}}
	uc := newTestUseCase(checkIn, bookings, &fakeRoomRepo{})

	_, err := uc.Start(context.Background(), 7)
	require.NoError(t, err)
	checkIn.sessions[7].Step = domain.StepRoomAssignment

	_, err = uc.Complete(context.Background(), 7)
	assert.ErrorIs(t, err, ErrNotFinalStep)
	assert.Equal(t, domain.StatusBooked, bookings.bookings[7].Status, "статус не изменился")
}

func TestComplete_OccupiedRoomRejected(t *testing.T) {
	checkIn := newFakeCheckInRepo()
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{7: bookedBooking(7)}}
	rooms := &fakeRoomRepo{rooms: map[int64]*domain.Room{
		101: {ID: 101, Number: "101", Status: domain.RoomOccupied},
	}}
	uc := newTestUseCase(checkIn, bookings, rooms)

	_, err := uc.Start(context.Background(), 7)
	require.NoError(t, err)

	session := checkIn.sessions[7]
	session.Step = domain.StepFinalReview
	session.IDType = ptr.Ptr("passport")
	session.IDNumber = ptr.Ptr("4509 123456")
	session.IDVerified = true
	session.DepositConfirmed = true
	session.AssignedRoomID = ptr.Ptr(int64(101))
	session.TermsAccepted = true
	session.SignatureRef = ptr.Ptr("sig-abc")
	session.PrivacyAccepted = true

	_, err = uc.Complete(context.Background(), 7)
	assert.ErrorIs(t, err, ErrRoomNotBookable)
	assert.Equal(t, domain.StatusBooked, bookings.bookings[7].Status)
	assert.Empty(t, checkIn.records)
}
