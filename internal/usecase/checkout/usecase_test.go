package checkout

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
	"github.com/m04kA/HMS-FrontdeskService/internal/integrations/paymentgateway"
	"github.com/m04kA/HMS-FrontdeskService/pkg/ptr"
)

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	copied := *f.bookings[id]
	return &copied, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	f.bookings[id].Status = status
	return nil
}

func (f *fakeBookingRepo) ApplyCheckout(_ context.Context, id int64, chargesTotal, finalPayment decimal.Decimal) error {
	b := f.bookings[id]
	b.AdjustmentsTotal = b.AdjustmentsTotal.Add(chargesTotal.Neg())
	b.PaymentsTotal = b.PaymentsTotal.Add(finalPayment)
	return nil
}

type fakeRoomRepo struct {
	rooms map[int64]*domain.Room
}

func (f *fakeRoomRepo) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	copied := *f.rooms[id]
	return &copied, nil
}

func (f *fakeRoomRepo) UpdateStatus(_ context.Context, id int64, status domain.RoomStatus) error {
	f.rooms[id].Status = status
	return nil
}

type fakeUsageRepo struct {
	usages []*domain.ServiceUsage
}

func (f *fakeUsageRepo) Create(_ context.Context, u *domain.ServiceUsage) (*domain.ServiceUsage, error) {
	copied := *u
	copied.ID = int64(len(f.usages) + 1)
	f.usages = append(f.usages, &copied)
	return &copied, nil
}

func (f *fakeUsageRepo) SumByBooking(_ context.Context, bookingID int64) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, u := range f.usages {
		if u.BookingID == bookingID {
			sum = sum.Add(u.Amount)
		}
	}
	return sum, nil
}

type fakeHousekeepingRepo struct {
	tasks []*domain.HousekeepingTask
}

func (f *fakeHousekeepingRepo) Create(_ context.Context, t *domain.HousekeepingTask) (*domain.HousekeepingTask, error) {
	copied := *t
	copied.ID = int64(len(f.tasks) + 1)
	f.tasks = append(f.tasks, &copied)
	return &copied, nil
}

type fakeGatewayClient struct {
	err      error
	requests []paymentgateway.ChargeRequest
}

func (f *fakeGatewayClient) ChargeWithGracefulDegradation(_ context.Context, req paymentgateway.ChargeRequest) (*paymentgateway.ChargeResponse, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return &paymentgateway.ChargeResponse{TransactionID: "txn-001", Status: "captured"}, nil
}

type fixedTimeProvider struct{ now time.Time }

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type checkoutFixture struct {
	bookings     *fakeBookingRepo
	rooms        *fakeRoomRepo
	usages       *fakeUsageRepo
	housekeeping *fakeHousekeepingRepo
	gateway      *fakeGatewayClient
	uc           *UseCase
}

// checkedInBooking: проживание 3000, аванс 1500, налог 0 - баланс фолио 1500
func newCheckoutFixture() *checkoutFixture {
	f := &checkoutFixture{
		bookings: &fakeBookingRepo{bookings: map[int64]*domain.Booking{
			5: {
				ID:             5,
				ReferenceCode:  "BK-2025-0005",
				GuestName:      "Иван Петров",
				Status:         domain.StatusCheckedIn,
				RoomID:         ptr.Ptr(int64(101)),
				RoomNumber:     ptr.Ptr("101"),
				TotalAmount:    decimal.RequireFromString("3000.00"),
				AdvancePayment: decimal.RequireFromString("1500.00"),
			},
		}},
		rooms: &fakeRoomRepo{rooms: map[int64]*domain.Room{
			101: {ID: 101, Number: "101", Status: domain.RoomOccupied},
		}},
		usages:       &fakeUsageRepo{},
		housekeeping: &fakeHousekeepingRepo{},
		gateway:      &fakeGatewayClient{},
	}
	f.uc = NewUseCase(
		f.bookings, f.rooms, f.usages, f.housekeeping, f.gateway,
		fakeTxManager{}, decimal.Zero, nopLogger{},
	)
	f.uc.timeProvider = &fixedTimeProvider{now: time.Date(2025, 6, 14, 12, 0, 0, 0, time.UTC)}
	return f
}

func TestGetFolio_ComputedOnTheFly(t *testing.T) {
	f := newCheckoutFixture()
	f.usages.usages = []*domain.ServiceUsage{
		{BookingID: 5, ServiceName: "Мини-бар", Amount: decimal.RequireFromString("350.00")},
		{BookingID: 5, ServiceName: "Завтрак", Amount: decimal.RequireFromString("650.00")},
	}

	folio, err := f.uc.GetFolio(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, "3000.00", folio.RoomCharge)
	assert.Equal(t, "1000.00", folio.ServiceCharges)
	assert.Equal(t, "1500.00", folio.AdvancePayment)
	// 3000 + 0 + 1000 - 1500 = 2500
	assert.Equal(t, "2500.00", folio.Balance)
}

func TestExecute_LeftoverBalanceAllowed(t *testing.T) {
	f := newCheckoutFixture()

	// Баланс 1500, доначисление 500, оплата 1500 - долг 500 остается
	resp, err := f.uc.Execute(context.Background(), &ExecuteRequest{
		BookingID: 5,
		AdditionalCharges: []ChargeInput{
			{Description: "Мини-бар", Amount: "500.00", Department: "room_service"},
		},
		FinalPayment:  "1500.00",
		PaymentMethod: "card",
	})
	require.NoError(t, err)

	assert.Equal(t, "500.00", resp.FinalBalance)
	assert.Equal(t, domain.StatusCheckedOut, f.bookings.bookings[5].Status)
	assert.Equal(t, domain.RoomAvailable, f.rooms.rooms[101].Status)

	// Доначисление сохранено как оказанная услуга
	require.Len(t, f.usages.usages, 1)
	assert.Equal(t, "Мини-бар", f.usages.usages[0].ServiceName)

	// Задача уборки после выезда создана
	require.Len(t, f.housekeeping.tasks, 1)
	assert.Equal(t, domain.TaskCheckoutCleaning, f.housekeeping.tasks[0].TaskType)
	assert.Equal(t, "101", f.housekeeping.tasks[0].RoomNumber)

	require.NotNil(t, resp.TransactionID)
	assert.Equal(t, "txn-001", *resp.TransactionID)
}

func TestExecute_OverpaymentBlocked(t *testing.T) {
	f := newCheckoutFixture()

	// Баланс 1500, оплата 2000 - переплата запрещена
	_, err := f.uc.Execute(context.Background(), &ExecuteRequest{
		BookingID:    5,
		FinalPayment: "2000.00",
	})
	assert.ErrorIs(t, err, ErrNegativeBalance)
	assert.Equal(t, domain.StatusCheckedIn, f.bookings.bookings[5].Status, "выезд не зафиксирован")
	assert.Empty(t, f.housekeeping.tasks)
}

func TestExecute_NotCheckedInRejected(t *testing.T) {
	f := newCheckoutFixture()
	f.bookings.bookings[5].Status = domain.StatusBooked

	_, err := f.uc.Execute(context.Background(), &ExecuteRequest{BookingID: 5, FinalPayment: "0"})
	assert.ErrorIs(t, err, ErrBookingNotEligible)
}

func TestExecute_NegativeChargeRejected(t *testing.T) {
	f := newCheckoutFixture()

	_, err := f.uc.Execute(context.Background(), &ExecuteRequest{
		BookingID: 5,
		AdditionalCharges: []ChargeInput{
			{Description: "Скидка", Amount: "-100.00"},
		},
		FinalPayment: "0",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_GatewayDegradedFallsBackToOffline(t *testing.T) {
	f := newCheckoutFixture()
	f.gateway.err = paymentgateway.ErrServiceDegraded

	resp, err := f.uc.Execute(context.Background(), &ExecuteRequest{
		BookingID:     5,
		FinalPayment:  "1500.00",
		PaymentMethod: "card",
	})
	require.NoError(t, err, "недоступный шлюз не откатывает выезд")

	assert.Nil(t, resp.TransactionID, "платеж зафиксирован offline")
	assert.Equal(t, domain.StatusCheckedOut, f.bookings.bookings[5].Status)
}

func TestExecute_DeclinedPaymentLeavesBookingCheckedIn(t *testing.T) {
	f := newCheckoutFixture()
	f.gateway.err = errors.New("card declined")

	_, err := f.uc.Execute(context.Background(), &ExecuteRequest{
		BookingID: 5,
		AdditionalCharges: []ChargeInput{
			{Description: "Мини-бар", Amount: "500.00", Department: "room_service"},
		},
		FinalPayment:  "1500.00",
		PaymentMethod: "card",
	})
	assert.ErrorIs(t, err, ErrPaymentDeclined)

	// Отклоненный платеж не проводит выезд: бронирование остается
	// заселенным, суммы и номер не трогаются
	b := f.bookings.bookings[5]
	assert.Equal(t, domain.StatusCheckedIn, b.Status)
	assert.True(t, b.PaymentsTotal.IsZero(), "отклоненная сумма не попадает в платежи")
	assert.True(t, b.AdjustmentsTotal.IsZero())
	assert.Equal(t, domain.RoomOccupied, f.rooms.rooms[101].Status, "номер не освобождается")
	assert.Empty(t, f.usages.usages, "доначисления не фиксируются")
	assert.Empty(t, f.housekeeping.tasks)
}

func TestExecute_ZeroPaymentSkipsGateway(t *testing.T) {
	f := newCheckoutFixture()

	// Оплачивать нечего: аванс покрывает проживание
	f.bookings.bookings[5].AdvancePayment = decimal.RequireFromString("3000.00")

	_, err := f.uc.Execute(context.Background(), &ExecuteRequest{BookingID: 5, FinalPayment: "0"})
	require.NoError(t, err)
	assert.Empty(t, f.gateway.requests, "шлюз не вызывается при нулевом платеже")
}
