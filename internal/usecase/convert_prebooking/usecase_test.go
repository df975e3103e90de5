package convert_prebooking

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
	preBookingRepo "github.com/m04kA/HMS-FrontdeskService/internal/infra/storage/prebooking"
	roomRepo "github.com/m04kA/HMS-FrontdeskService/internal/infra/storage/room"
	"github.com/m04kA/HMS-FrontdeskService/pkg/ptr"
)

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakePreBookingRepo struct {
	preBookings map[int64]*domain.PreBooking
}

func (f *fakePreBookingRepo) GetByID(_ context.Context, id int64) (*domain.PreBooking, error) {
	p, ok := f.preBookings[id]
	if !ok {
		return nil, preBookingRepo.ErrPreBookingNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakePreBookingRepo) MarkConverted(_ context.Context, id int64) error {
	p := f.preBookings[id]
	if p.Status != domain.PreBookingPending {
		return preBookingRepo.ErrAlreadyConverted
	}
	p.Status = domain.PreBookingConverted
	return nil
}

type fakeBookingRepo struct {
	created []*domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	copied := *booking
	copied.ID = int64(len(f.created) + 1)
	f.created = append(f.created, &copied)
	return &copied, nil
}

type fakeRoomRepo struct {
	rooms map[int64]*domain.Room
	types map[int64]*domain.RoomType
}

func (f *fakeRoomRepo) GetType(_ context.Context, id int64) (*domain.RoomType, error) {
	t, ok := f.types[id]
	if !ok {
		return nil, roomRepo.ErrRoomTypeNotFound
	}
	return t, nil
}

func (f *fakeRoomRepo) ListAvailableByType(_ context.Context, roomTypeID int64, _ *int64) ([]*domain.Room, error) {
	out := make([]*domain.Room, 0)
	for _, r := range f.rooms {
		if r.RoomTypeID == roomTypeID && r.Status == domain.RoomAvailable {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRoomRepo) UpdateStatus(_ context.Context, id int64, status domain.RoomStatus) error {
	f.rooms[id].Status = status
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// pendingPreBooking: категория Standard по 3000/ночь, 4 ночи
func pendingPreBooking(id int64, rooms int) *domain.PreBooking {
	return &domain.PreBooking{
		ID:            id,
		ReferenceCode: "PB-2025-0010",
		CustomerID:    3,
		GuestID:       4,
		BranchID:      1,
		RoomTypeID:    1,
		NumberOfRooms: rooms,
		CheckInDate:   date(2025, 6, 10),
		CheckOutDate:  date(2025, 6, 14),
		Adults:        2,
		Status:        domain.PreBookingPending,
	}
}

func newConvertFixture(preBooking *domain.PreBooking) (*fakePreBookingRepo, *fakeBookingRepo, *fakeRoomRepo, *UseCase) {
	preBookings := &fakePreBookingRepo{preBookings: map[int64]*domain.PreBooking{preBooking.ID: preBooking}}
	bookings := &fakeBookingRepo{}
	rooms := &fakeRoomRepo{
		rooms: map[int64]*domain.Room{
			101: {ID: 101, Number: "101", RoomTypeID: 1, BranchID: 1, Status: domain.RoomAvailable},
			102: {ID: 102, Number: "102", RoomTypeID: 1, BranchID: 1, Status: domain.RoomOccupied},
		},
		types: map[int64]*domain.RoomType{
			1: {ID: 1, Name: "Standard", DailyRate: decimal.RequireFromString("3000.00"), Capacity: 2},
		},
	}
	uc := NewUseCase(preBookings, bookings, rooms, fakeTxManager{}, nopLogger{})
	return preBookings, bookings, rooms, uc
}

func TestExecute_IndividualAssignsRoomAndDerivesMoney(t *testing.T) {
	preBookings, bookings, rooms, uc := newConvertFixture(pendingPreBooking(10, 1))

	resp, err := uc.Execute(context.Background(), &Request{PreBookingID: 10, RoomID: ptr.Ptr(int64(101))})
	require.NoError(t, err)

	// 3000 x 1 номер x 4 ночи = 12000, аванс 10%
	assert.Equal(t, "12000.00", resp.TotalAmount)
	assert.Equal(t, "1200.00", resp.AdvancePayment)

	assert.False(t, resp.IsGroupBooking)
	require.NotNil(t, resp.RoomID)
	assert.Equal(t, int64(101), *resp.RoomID)
	assert.Equal(t, domain.RoomReserved, rooms.rooms[101].Status)

	assert.Equal(t, domain.PreBookingConverted, preBookings.preBookings[10].Status)
	require.Len(t, bookings.created, 1)
	assert.Equal(t, domain.StatusBooked, bookings.created[0].Status)
	assert.Equal(t, "PB-2025-0010", bookings.created[0].ReferenceCode)
}

func TestExecute_GroupGetsTypeAndQuantityWithoutRoom(t *testing.T) {
	_, bookings, rooms, uc := newConvertFixture(pendingPreBooking(10, 3))

	resp, err := uc.Execute(context.Background(), &Request{PreBookingID: 10})
	require.NoError(t, err)

	assert.True(t, resp.IsGroupBooking)
	assert.Nil(t, resp.RoomID, "групповое бронирование не получает конкретный номер")
	assert.Equal(t, int64(1), resp.RoomTypeID)
	assert.Equal(t, 3, resp.RoomQuantity)

	// 3000 x 3 номера x 4 ночи = 36000
	assert.Equal(t, "36000.00", resp.TotalAmount)
	assert.Equal(t, "3600.00", resp.AdvancePayment)

	require.Len(t, bookings.created, 1)
	assert.Nil(t, bookings.created[0].RoomID)
	assert.Equal(t, domain.RoomAvailable, rooms.rooms[101].Status, "номера не резервируются")
}

func TestExecute_ProvidedAmountsPreserved(t *testing.T) {
	_, _, _, uc := newConvertFixture(pendingPreBooking(10, 1))

	// Согласованная с гостем цена заменяет расчетную, аванс выводится из расчетной
	resp, err := uc.Execute(context.Background(), &Request{
		PreBookingID: 10,
		RoomID:       ptr.Ptr(int64(101)),
		TotalAmount:  ptr.Ptr("10000.00"),
	})
	require.NoError(t, err)

	assert.Equal(t, "10000.00", resp.TotalAmount)
	assert.Equal(t, "1000.00", resp.AdvancePayment, "аванс выводится из присланной суммы")
}

func TestExecute_DoubleConversionRejected(t *testing.T) {
	_, bookings, _, uc := newConvertFixture(pendingPreBooking(10, 1))

	_, err := uc.Execute(context.Background(), &Request{PreBookingID: 10, RoomID: ptr.Ptr(int64(101))})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), &Request{PreBookingID: 10, RoomID: ptr.Ptr(int64(101))})
	assert.ErrorIs(t, err, ErrAlreadyConverted)
	assert.Len(t, bookings.created, 1, "второе бронирование не создано")
}

func TestExecute_NoRoomsAvailableForIndividual(t *testing.T) {
	preBookings, bookings, rooms, uc := newConvertFixture(pendingPreBooking(10, 1))
	rooms.rooms[101].Status = domain.RoomMaintenance

	_, err := uc.Execute(context.Background(), &Request{PreBookingID: 10, RoomID: ptr.Ptr(int64(101))})
	assert.ErrorIs(t, err, ErrNoRoomsAvailable)
	assert.Empty(t, bookings.created)
	assert.Equal(t, domain.PreBookingPending, preBookings.preBookings[10].Status, "заявка осталась в pending")
}

func TestExecute_CancelledPreBookingRejected(t *testing.T) {
	p := pendingPreBooking(10, 1)
	p.Status = domain.PreBookingCancelled
	_, _, _, uc := newConvertFixture(p)

	_, err := uc.Execute(context.Background(), &Request{PreBookingID: 10})
	assert.ErrorIs(t, err, ErrAlreadyConverted)
}

func TestExecute_InvalidMoneyOverrideRejected(t *testing.T) {
	_, _, _, uc := newConvertFixture(pendingPreBooking(10, 1))

	_, err := uc.Execute(context.Background(), &Request{
		PreBookingID:   10,
		AdvancePayment: ptr.Ptr("-50.00"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_OperatorRoomChoiceRespected(t *testing.T) {
	_, _, rooms, uc := newConvertFixture(pendingPreBooking(10, 1))
	rooms.rooms[202] = &domain.Room{ID: 202, Number: "202", RoomTypeID: 1, BranchID: 1, Status: domain.RoomAvailable}

	// Свободны 101 и 202; оператор выбрал 202
	resp, err := uc.Execute(context.Background(), &Request{PreBookingID: 10, RoomID: ptr.Ptr(int64(202))})
	require.NoError(t, err)

	require.NotNil(t, resp.RoomID)
	assert.Equal(t, int64(202), *resp.RoomID, "бронирование получает номер, выбранный оператором")
	assert.Equal(t, domain.RoomReserved, rooms.rooms[202].Status)
	assert.Equal(t, domain.RoomAvailable, rooms.rooms[101].Status, "другие свободные номера не трогаются")
}

func TestExecute_IndividualWithoutRoomRejected(t *testing.T) {
	preBookings, bookings, _, uc := newConvertFixture(pendingPreBooking(10, 1))

	_, err := uc.Execute(context.Background(), &Request{PreBookingID: 10})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, bookings.created)
	assert.Equal(t, domain.PreBookingPending, preBookings.preBookings[10].Status)
}

func TestExecute_UnavailableRoomChoiceRejected(t *testing.T) {
	preBookings, bookings, rooms, uc := newConvertFixture(pendingPreBooking(10, 1))

	// Номер 102 занят, выбрать его нельзя
	_, err := uc.Execute(context.Background(), &Request{PreBookingID: 10, RoomID: ptr.Ptr(int64(102))})
	assert.ErrorIs(t, err, ErrRoomNotAvailable)
	assert.Empty(t, bookings.created)
	assert.Equal(t, domain.RoomOccupied, rooms.rooms[102].Status)
	assert.Equal(t, domain.PreBookingPending, preBookings.preBookings[10].Status)
}

func TestExecute_RoomChoiceRejectedForGroup(t *testing.T) {
	_, bookings, _, uc := newConvertFixture(pendingPreBooking(10, 3))

	_, err := uc.Execute(context.Background(), &Request{PreBookingID: 10, RoomID: ptr.Ptr(int64(101))})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, bookings.created)
}
