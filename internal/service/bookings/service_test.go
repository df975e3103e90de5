package bookings

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
	bookingRepo "github.com/m04kA/HMS-FrontdeskService/internal/infra/storage/booking"
	guestRepo "github.com/m04kA/HMS-FrontdeskService/internal/infra/storage/guest"
	"github.com/m04kA/HMS-FrontdeskService/internal/service/bookings/models"
	"github.com/m04kA/HMS-FrontdeskService/pkg/ptr"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	filter   domain.BookingsFilter
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	copied := *booking
	copied.ID = int64(len(f.bookings) + 1)
	f.bookings = append(f.bookings, &copied)
	return &copied, nil
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	for _, b := range f.bookings {
		if b.ID == id {
			copied := *b
			return &copied, nil
		}
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (f *fakeBookingRepo) ListWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, int64, error) {
	f.filter = filter
	return f.bookings, int64(len(f.bookings)), nil
}

func (f *fakeBookingRepo) ListOverlapping(_ context.Context, _, _ time.Time, _ *int64) ([]*domain.Booking, error) {
	return f.bookings, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	for _, b := range f.bookings {
		if b.ID == id {
			b.Status = status
			return nil
		}
	}
	return bookingRepo.ErrBookingNotFound
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, reason string) error {
	for _, b := range f.bookings {
		if b.ID == id {
			b.Status = domain.StatusCancelled
			b.CancellationReason = &reason
			return nil
		}
	}
	return bookingRepo.ErrBookingNotFound
}

type fakeGuestRepo struct {
	guests map[int64]*domain.Guest
}

func (f *fakeGuestRepo) GetByID(_ context.Context, id int64) (*domain.Guest, error) {
	g, ok := f.guests[id]
	if !ok {
		return nil, guestRepo.ErrGuestNotFound
	}
	return g, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func sampleBookings() []*domain.Booking {
	mk := func(id int64, ref, guest, customer string, room *string) *domain.Booking {
		return &domain.Booking{
			ID:            id,
			ReferenceCode: ref,
			GuestName:     guest,
			CustomerName:  customer,
			RoomNumber:    room,
			Status:        domain.StatusBooked,
			CheckInDate:   time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
			CheckOutDate:  time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
			TotalAmount:   decimal.RequireFromString("6000.00"),
		}
	}
	return []*domain.Booking{
		mk(1, "BK-2025-0001", "Иван Петров", "Иван Петров", ptr.Ptr("101")),
		mk(2, "BK-2025-0002", "Анна Смирнова", "ООО Ромашка", ptr.Ptr("205")),
		mk(3, "BK-2025-0003", "John Smith", "John Smith", nil),
	}
}

func TestList_SearchNarrowsByGuestName(t *testing.T) {
	repo := &fakeBookingRepo{bookings: sampleBookings()}
	svc := NewService(repo, &fakeGuestRepo{}, nopLogger{})

	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{
		Search: ptr.Ptr("анна"),
	})
	require.NoError(t, err)

	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "BK-2025-0002", resp.Bookings[0].ReferenceCode)
}

func TestList_SearchMatchesReferenceAndRoom(t *testing.T) {
	repo := &fakeBookingRepo{bookings: sampleBookings()}
	svc := NewService(repo, &fakeGuestRepo{}, nopLogger{})

	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{
		Search: ptr.Ptr("0003"),
	})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "John Smith", resp.Bookings[0].GuestName)

	resp, err = svc.List(context.Background(), &models.ListBookingsRequest{
		Search: ptr.Ptr("205"),
	})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "BK-2025-0002", resp.Bookings[0].ReferenceCode)
}

func TestList_BlankSearchKeepsWholePage(t *testing.T) {
	repo := &fakeBookingRepo{bookings: sampleBookings()}
	svc := NewService(repo, &fakeGuestRepo{}, nopLogger{})

	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{
		Search: ptr.Ptr("   "),
	})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 3)
}

func TestList_PaginationClampsAndDefaults(t *testing.T) {
	repo := &fakeBookingRepo{bookings: sampleBookings()}
	svc := NewService(repo, &fakeGuestRepo{}, nopLogger{})

	_, err := svc.List(context.Background(), &models.ListBookingsRequest{Page: -5, Limit: 10000})
	require.NoError(t, err)

	assert.Equal(t, int64(1), repo.filter.Page)
	assert.Equal(t, int64(domain.MaxPageLimit), repo.filter.Limit)
}

func TestExportCSV_UnpagedAndQuoted(t *testing.T) {
	bookings := sampleBookings()
	// Запятая в имени заказчика должна быть экранирована
	bookings[1].CustomerName = `ООО "Ромашка, и партнеры"`
	repo := &fakeBookingRepo{bookings: bookings}
	svc := NewService(repo, &fakeGuestRepo{}, nopLogger{})

	data, err := svc.ExportCSV(context.Background(), &models.ListBookingsRequest{Limit: 20})
	require.NoError(t, err)

	assert.Equal(t, int64(0), repo.filter.Limit, "выгрузка снимает лимит страницы")

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[2], `"ООО ""Ромашка, и партнеры"""`)
}

func TestCancel_InactiveBookingRejected(t *testing.T) {
	bookings := sampleBookings()
	bookings[0].Status = domain.StatusCheckedOut
	repo := &fakeBookingRepo{bookings: bookings}
	svc := NewService(repo, &fakeGuestRepo{}, nopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{CancellationReason: "no-show"})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCreate_UnknownGuestRejected(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := NewService(repo, &fakeGuestRepo{guests: map[int64]*domain.Guest{}}, nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateBookingRequest{
		ReferenceCode:  "BK-2025-0100",
		CustomerID:     1,
		GuestID:        1,
		CheckInDate:    "2025-06-10",
		CheckOutDate:   "2025-06-12",
		TotalAmount:    "6000.00",
		AdvancePayment: "600.00",
	})
	assert.ErrorIs(t, err, ErrGuestNotFound)
}
