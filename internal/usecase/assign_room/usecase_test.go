package assign_room

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
	roomRepo "github.com/m04kA/HMS-FrontdeskService/internal/infra/storage/room"
)

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeBookingRepo struct {
	bookings  map[int64]*domain.Booking
	conflicts []domain.RoomConflict
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b := f.bookings[id]
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) GetRoomConflicts(_ context.Context, roomID int64, start, end time.Time, excludeBookingID *int64) ([]domain.RoomConflict, error) {
	out := make([]domain.RoomConflict, 0)
	for _, c := range f.conflicts {
		if c.RoomID != roomID {
			continue
		}
		if excludeBookingID != nil && c.BookingID == *excludeBookingID {
			continue
		}
		if !domain.DateRangesOverlap(start, end, c.CheckInDate, c.CheckOutDate) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeBookingRepo) AssignRoom(_ context.Context, id int64, roomID int64, roomNumber string) error {
	f.bookings[id].RoomID = &roomID
	f.bookings[id].RoomNumber = &roomNumber
	return nil
}

type fakeRoomRepo struct {
	rooms map[int64]*domain.Room
	types map[int64]*domain.RoomType
}

func (f *fakeRoomRepo) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	r, ok := f.rooms[id]
	if !ok {
		return nil, roomRepo.ErrRoomNotFound
	}
	copied := *r
	return &copied, nil
}

func (f *fakeRoomRepo) GetType(_ context.Context, id int64) (*domain.RoomType, error) {
	t, ok := f.types[id]
	if !ok {
		return nil, roomRepo.ErrRoomTypeNotFound
	}
	return t, nil
}

func (f *fakeRoomRepo) ListTypes(_ context.Context) ([]*domain.RoomType, error) {
	out := make([]*domain.RoomType, 0, len(f.types))
	for _, t := range f.types {
		out = append(out, t)
	}
	return out, nil
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

func testFixture() (*fakeBookingRepo, *fakeRoomRepo, *UseCase) {
	bookings := &fakeBookingRepo{
		bookings: map[int64]*domain.Booking{
			1: {
				ID:            1,
				ReferenceCode: "BK-2025-0001",
				BranchID:      1,
				Status:        domain.StatusBooked,
				CheckInDate:   date(2025, 6, 10),
				CheckOutDate:  date(2025, 6, 14),
				Adults:        2,
			},
		},
	}
	rooms := &fakeRoomRepo{
		rooms: map[int64]*domain.Room{
			101: {ID: 101, Number: "101", RoomTypeID: 1, BranchID: 1, Status: domain.RoomAvailable},
			201: {ID: 201, Number: "201", RoomTypeID: 2, BranchID: 1, Status: domain.RoomAvailable},
			301: {ID: 301, Number: "301", RoomTypeID: 3, BranchID: 1, Status: domain.RoomMaintenance},
		},
		types: map[int64]*domain.RoomType{
			1: {ID: 1, Name: "Standard", DailyRate: decimal.RequireFromString("3000.00"), Capacity: 2},
			2: {ID: 2, Name: "Deluxe", DailyRate: decimal.RequireFromString("5000.00"), Capacity: 3},
			3: {ID: 3, Name: "Suite", DailyRate: decimal.RequireFromString("9000.00"), Capacity: 4},
		},
	}
	uc := NewUseCase(bookings, rooms, fakeTxManager{}, nopLogger{})
	return bookings, rooms, uc
}

func TestExecute_AssignsAndReservesRoom(t *testing.T) {
	bookings, rooms, uc := testFixture()

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 1, RoomID: 101})
	require.NoError(t, err)

	assert.Equal(t, "101", resp.RoomNumber)
	assert.Empty(t, resp.Conflicts)
	require.NotNil(t, bookings.bookings[1].RoomID)
	assert.Equal(t, int64(101), *bookings.bookings[1].RoomID)
	assert.Equal(t, domain.RoomReserved, rooms.rooms[101].Status)
}

func TestExecute_ConflictReturnedAsWarning(t *testing.T) {
	bookings, rooms, uc := testFixture()
	bookings.conflicts = []domain.RoomConflict{{
		RoomID:        101,
		BookingID:     42,
		ReferenceCode: "BK-2025-0042",
		GuestName:     "Анна Смирнова",
		CheckInDate:   date(2025, 6, 12),
		CheckOutDate:  date(2025, 6, 16),
		Status:        domain.StatusBooked,
	}}

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 1, RoomID: 101})
	require.NoError(t, err, "конфликт дат не блокирует назначение")

	require.Len(t, resp.Conflicts, 1)
	assert.Equal(t, "BK-2025-0042", resp.Conflicts[0].ReferenceCode)
	assert.Equal(t, int64(101), *bookings.bookings[1].RoomID)
	assert.Equal(t, domain.RoomReserved, rooms.rooms[101].Status)
}

func TestExecute_OwnBookingExcludedFromConflicts(t *testing.T) {
	bookings, _, uc := testFixture()
	bookings.conflicts = []domain.RoomConflict{{
		RoomID:       101,
		BookingID:    1, // Само бронирование при переназначении
		CheckInDate:  date(2025, 6, 10),
		CheckOutDate: date(2025, 6, 14),
		Status:       domain.StatusBooked,
	}}

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 1, RoomID: 101})
	require.NoError(t, err)
	assert.Empty(t, resp.Conflicts)
}

func TestExecute_MaintenanceRoomNeverAssigned(t *testing.T) {
	bookings, _, uc := testFixture()

	_, err := uc.Execute(context.Background(), &Request{BookingID: 1, RoomID: 301})
	assert.ErrorIs(t, err, ErrRoomNotBookable)
	assert.Nil(t, bookings.bookings[1].RoomID)
}

func TestExecute_CheckedOutBookingRejected(t *testing.T) {
	bookings, _, uc := testFixture()
	bookings.bookings[1].Status = domain.StatusCheckedOut

	_, err := uc.Execute(context.Background(), &Request{BookingID: 1, RoomID: 101})
	assert.ErrorIs(t, err, ErrBookingNotEligible)
}

func TestExecute_SuggestsUpgradesWithCapacityAndRate(t *testing.T) {
	_, _, uc := testFixture()

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 1, RoomID: 101})
	require.NoError(t, err)

	// Deluxe и Suite дороже Standard и вмещают двоих,
	// но Suite в ремонте - свободных номеров нет
	require.Len(t, resp.Upgrades, 1)
	assert.Equal(t, "Deluxe", resp.Upgrades[0].RoomTypeName)
	assert.Equal(t, "5000.00", resp.Upgrades[0].DailyRate)
	assert.Equal(t, 1, resp.Upgrades[0].AvailableRooms)
}

func TestCheck_DoesNotMutate(t *testing.T) {
	bookings, rooms, uc := testFixture()

	resp, err := uc.Check(context.Background(), &Request{BookingID: 1, RoomID: 101})
	require.NoError(t, err)

	assert.Equal(t, int64(101), resp.RoomID)
	assert.Nil(t, bookings.bookings[1].RoomID, "проверка не назначает номер")
	assert.Equal(t, domain.RoomAvailable, rooms.rooms[101].Status)
}
