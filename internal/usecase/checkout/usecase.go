package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
	bookingRepo "github.com/m04kA/HMS-FrontdeskService/internal/infra/storage/booking"
	"github.com/m04kA/HMS-FrontdeskService/internal/integrations/paymentgateway"
)

// UseCase выезд гостя: фолио, доначисления, итоговый платеж
// Переплата блокируется; недоплата допускается и остается на балансе
type UseCase struct {
	bookingRepo      BookingRepository
	roomRepo         RoomRepository
	usageRepo        UsageRepository
	housekeepingRepo HousekeepingRepository
	gatewayClient    PaymentGatewayClient
	txManager        TransactionManager
	timeProvider     TimeProvider
	taxRate          decimal.Decimal
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	usageRepo UsageRepository,
	housekeepingRepo HousekeepingRepository,
	gatewayClient PaymentGatewayClient,
	txManager TransactionManager,
	taxRate decimal.Decimal,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		roomRepo:         roomRepo,
		usageRepo:        usageRepo,
		housekeepingRepo: housekeepingRepo,
		gatewayClient:    gatewayClient,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		taxRate:          taxRate,
		logger:           logger,
	}
}

// GetFolio собирает финансовую сводку бронирования
// Фолио вычисляется на лету и нигде не хранится
func (uc *UseCase) GetFolio(ctx context.Context, bookingID int64) (*FolioResponse, error) {
	uc.logger.Info("Checkout.GetFolio: booking=%d", bookingID)

	booking, err := uc.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	folio, err := uc.buildFolio(ctx, booking)
	if err != nil {
		return nil, err
	}

	return toFolioResponse(booking, folio), nil
}

// Execute проводит выезд
// Одна сериализуемая транзакция фиксирует доначисления, платеж,
// статус бронирования, освобождение номера и задачу уборки.
// Платеж проводится внутри транзакции: отклоненный платеж откатывает
// выезд целиком, и бронирование остается заселенным
func (uc *UseCase) Execute(ctx context.Context, req *ExecuteRequest) (*ExecuteResponse, error) {
	uc.logger.Info("Checkout: booking=%d", req.BookingID)

	// 1. Валидация входных данных
	finalPayment, err := decimal.NewFromString(req.FinalPayment)
	if err != nil || finalPayment.IsNegative() {
		uc.logger.Warn("Checkout: invalid final payment %q for booking=%d", req.FinalPayment, req.BookingID)
		return nil, fmt.Errorf("%w: invalid final payment", ErrInvalidInput)
	}

	charges, err := parseCharges(req.AdditionalCharges)
	if err != nil {
		uc.logger.Warn("Checkout: invalid additional charges for booking=%d", req.BookingID)
		return nil, fmt.Errorf("%w: invalid additional charges", ErrInvalidInput)
	}
	chargesTotal := domain.SumAdditionalCharges(charges)

	now := uc.timeProvider.Now()

	var (
		result        *ExecuteResponse
		booking       *domain.Booking
		transactionID *string
		charged       bool
	)

	// 2. Все изменения - в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Бронирование с блокировкой строки
		booking, err = uc.getBooking(txCtx, req.BookingID)
		if err != nil {
			return err
		}

		if !booking.CanCheckOut() {
			uc.logger.Warn("Checkout: booking id=%d not eligible, status=%s", booking.ID, booking.Status)
			return ErrBookingNotEligible
		}

		// 2.2. Фолио и итоговый баланс
		folio, err := uc.buildFolio(txCtx, booking)
		if err != nil {
			return err
		}

		finalBalance := domain.FinalBalance(folio.Balance, charges, finalPayment)
		if finalBalance.IsNegative() {
			uc.logger.Warn("Checkout: negative final balance %s for booking=%d", finalBalance, booking.ID)
			return ErrNegativeBalance
		}

		// 2.3. Платеж через шлюз до любых изменений
		// Отклоненный платеж прерывает транзакцию; недоступный шлюз
		// не блокирует выезд - платеж фиксируется как offline.
		// Флаг charged защищает от повторного списания при повторе
		// транзакции после serialization_failure
		if finalPayment.IsPositive() && !charged {
			resp, err := uc.gatewayClient.ChargeWithGracefulDegradation(txCtx, paymentgateway.ChargeRequest{
				BookingID:     booking.ID,
				Amount:        finalPayment,
				Currency:      "RUB",
				PaymentMethod: req.PaymentMethod,
				Description:   fmt.Sprintf("Checkout payment for booking %s", booking.ReferenceCode),
			})
			switch {
			case err == nil:
				transactionID = &resp.TransactionID
				charged = true
			case errors.Is(err, paymentgateway.ErrServiceDegraded):
				uc.logger.Warn("Checkout: gateway degraded, payment recorded offline for booking=%d", booking.ID)
				charged = true
			default:
				uc.logger.Error("Checkout: payment failed for booking=%d: %v", booking.ID, err)
				return ErrPaymentDeclined
			}
		}

		// 2.4. Доначисления фиксируются как оказанные услуги
		for _, c := range charges {
			if _, err := uc.usageRepo.Create(txCtx, &domain.ServiceUsage{
				BookingID:   booking.ID,
				ServiceName: c.Description,
				Department:  c.Department,
				Quantity:    1,
				Amount:      c.Amount,
				UsedAt:      now,
			}); err != nil {
				uc.logger.Error("Checkout: charge persist failed for booking=%d: %v", booking.ID, err)
				return fmt.Errorf("%w: charge persist failed: %v", ErrInternal, err)
			}
		}

		// 2.5. Суммы и статус бронирования
		if err := uc.bookingRepo.ApplyCheckout(txCtx, booking.ID, chargesTotal, finalPayment); err != nil {
			uc.logger.Error("Checkout: apply failed for booking=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: apply failed: %v", ErrInternal, err)
		}
		if err := uc.bookingRepo.UpdateStatus(txCtx, booking.ID, domain.StatusCheckedOut); err != nil {
			uc.logger.Error("Checkout: status update failed for booking=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: status update failed: %v", ErrInternal, err)
		}

		// 2.6. Номер освобождается, служба уборки получает задачу
		if booking.RoomID != nil {
			if err := uc.roomRepo.UpdateStatus(txCtx, *booking.RoomID, domain.RoomAvailable); err != nil {
				uc.logger.Error("Checkout: room release failed for id=%d: %v", *booking.RoomID, err)
				return fmt.Errorf("%w: room release failed: %v", ErrInternal, err)
			}

			roomNumber := ""
			if booking.RoomNumber != nil {
				roomNumber = *booking.RoomNumber
			}
			if _, err := uc.housekeepingRepo.Create(txCtx, &domain.HousekeepingTask{
				RoomID:       *booking.RoomID,
				RoomNumber:   roomNumber,
				TaskType:     domain.TaskCheckoutCleaning,
				Status:       domain.TaskPending,
				ScheduledFor: now,
			}); err != nil {
				uc.logger.Error("Checkout: housekeeping task create failed for room=%d: %v", *booking.RoomID, err)
				return fmt.Errorf("%w: housekeeping task create failed: %v", ErrInternal, err)
			}
		}

		result = &ExecuteResponse{
			BookingID:     booking.ID,
			FinalBalance:  domain.FinalBalance(folio.Balance, charges, finalPayment).StringFixed(2),
			ChargesTotal:  chargesTotal.StringFixed(2),
			FinalPayment:  finalPayment.StringFixed(2),
			TransactionID: transactionID,
			CheckedOutAt:  now,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("Checkout: booking=%d checked out, final balance=%s", req.BookingID, result.FinalBalance)
	return result, nil
}

// buildFolio собирает фолио из бронирования, услуг и налога
func (uc *UseCase) buildFolio(ctx context.Context, booking *domain.Booking) (*domain.Folio, error) {
	serviceCharges, err := uc.usageRepo.SumByBooking(ctx, booking.ID)
	if err != nil {
		uc.logger.Error("Checkout: usage sum failed for booking=%d: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: usage sum failed: %v", ErrInternal, err)
	}

	folio := &domain.Folio{
		BookingID:      booking.ID,
		RoomCharge:     booking.TotalAmount,
		Tax:            booking.TotalAmount.Mul(uc.taxRate).Round(2),
		ServiceCharges: serviceCharges,
		AdvancePayment: booking.AdvancePayment,
		PaymentsTotal:  booking.PaymentsTotal,
		Adjustments:    booking.AdjustmentsTotal,
	}
	folio.ComputeBalance()

	return folio, nil
}

func (uc *UseCase) getBooking(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	booking, err := uc.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("Checkout: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("Checkout: booking lookup failed for id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: booking lookup failed: %v", ErrInternal, err)
	}
	return booking, nil
}
