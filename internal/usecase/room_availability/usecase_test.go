package room_availability

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
	"github.com/m04kA/HMS-FrontdeskService/pkg/ptr"
)

type fakeRoomRepo struct {
	rooms []*domain.Room
}

func (f *fakeRoomRepo) ListWithFilter(_ context.Context, filter domain.RoomsFilter) ([]*domain.Room, int64, error) {
	out := make([]*domain.Room, 0, len(f.rooms))
	for _, r := range f.rooms {
		if filter.RoomTypeID != nil && r.RoomTypeID != *filter.RoomTypeID {
			continue
		}
		out = append(out, r)
	}
	return out, int64(len(out)), nil
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) ListOverlapping(_ context.Context, start, end time.Time, _ *int64) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if domain.DateRangesOverlap(start, end, b.CheckInDate, b.CheckOutDate) {
			out = append(out, b)
		}
	}
	return out, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newMatrixFixture() (*fakeRoomRepo, *fakeBookingRepo, *UseCase) {
	rooms := &fakeRoomRepo{rooms: []*domain.Room{
		{ID: 101, Number: "101", RoomTypeID: 1, RoomTypeName: "Standard", Floor: 1, Status: domain.RoomAvailable},
		{ID: 201, Number: "201", RoomTypeID: 2, RoomTypeName: "Deluxe", Floor: 2, Status: domain.RoomMaintenance},
	}}
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{
			ID:            7,
			ReferenceCode: "BK-2025-0007",
			GuestName:     "Иван Петров",
			RoomID:        ptr.Ptr(int64(101)),
			Status:        domain.StatusCheckedIn,
			CheckInDate:   date(2025, 6, 11),
			CheckOutDate:  date(2025, 6, 13),
		},
	}}
	return rooms, bookings, NewUseCase(rooms, bookings, nopLogger{})
}

func TestExecute_BuildsMatrix(t *testing.T) {
	_, _, uc := newMatrixFixture()

	resp, err := uc.Execute(context.Background(), &Request{
		StartDate: date(2025, 6, 10),
		EndDate:   date(2025, 6, 14),
	})
	require.NoError(t, err)

	require.Len(t, resp.Dates, 4)
	assert.Equal(t, "2025-06-10", resp.Dates[0])
	assert.Equal(t, "2025-06-13", resp.Dates[3])
	require.Len(t, resp.Rooms, 2)

	// Номер 101: занят 11 и 12 июня, день выезда 13-го свободен
	row := resp.Rooms[0]
	assert.Equal(t, "101", row.RoomNumber)
	assert.Equal(t, CellFree, row.Days[0].State)
	assert.Equal(t, CellOccupied, row.Days[1].State)
	assert.Equal(t, CellOccupied, row.Days[2].State)
	assert.Equal(t, CellFree, row.Days[3].State, "день выезда доступен следующему гостю")

	require.NotNil(t, row.Days[1].ReferenceCode)
	assert.Equal(t, "BK-2025-0007", *row.Days[1].ReferenceCode)
}

func TestExecute_MaintenanceBlocksWholeRange(t *testing.T) {
	_, _, uc := newMatrixFixture()

	resp, err := uc.Execute(context.Background(), &Request{
		StartDate: date(2025, 6, 10),
		EndDate:   date(2025, 6, 14),
	})
	require.NoError(t, err)

	row := resp.Rooms[1]
	assert.Equal(t, "201", row.RoomNumber)
	for _, cell := range row.Days {
		assert.Equal(t, CellMaintenance, cell.State)
	}
}

func TestExecute_BookedNotCheckedInShownAsBooked(t *testing.T) {
	_, bookings, uc := newMatrixFixture()
	bookings.bookings[0].Status = domain.StatusBooked

	resp, err := uc.Execute(context.Background(), &Request{
		StartDate: date(2025, 6, 11),
		EndDate:   date(2025, 6, 12),
	})
	require.NoError(t, err)
	assert.Equal(t, CellBooked, resp.Rooms[0].Days[0].State)
}

func TestExecute_InvalidRangeRejected(t *testing.T) {
	_, _, uc := newMatrixFixture()

	_, err := uc.Execute(context.Background(), &Request{
		StartDate: date(2025, 6, 14),
		EndDate:   date(2025, 6, 10),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		StartDate: date(2025, 1, 1),
		EndDate:   date(2025, 12, 31),
	})
	assert.ErrorIs(t, err, ErrRangeTooWide)
}

func TestExecute_RoomTypeFilterNarrowsRows(t *testing.T) {
	_, _, uc := newMatrixFixture()

	resp, err := uc.Execute(context.Background(), &Request{
		StartDate:  date(2025, 6, 10),
		EndDate:    date(2025, 6, 12),
		RoomTypeID: ptr.Ptr(int64(2)),
	})
	require.NoError(t, err)
	require.Len(t, resp.Rooms, 1)
	assert.Equal(t, "201", resp.Rooms[0].RoomNumber)
}

func TestExportCSV_RowPerRoomPerDay(t *testing.T) {
	_, _, uc := newMatrixFixture()

	data, err := uc.ExportCSV(context.Background(), &Request{
		StartDate: date(2025, 6, 11),
		EndDate:   date(2025, 6, 13),
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	// Заголовок + 2 номера x 2 дня
	require.Len(t, lines, 5)
	assert.Equal(t, "Room,Type,Floor,Date,State,Booking Reference,Guest", lines[0])
	assert.Contains(t, lines[1], "occupied")
	assert.Contains(t, lines[1], "BK-2025-0007")
}
