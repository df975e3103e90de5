package convert_prebooking

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
	preBookingRepo "github.com/m04kA/HMS-FrontdeskService/internal/infra/storage/prebooking"
	roomRepo "github.com/m04kA/HMS-FrontdeskService/internal/infra/storage/room"
	"github.com/m04kA/HMS-FrontdeskService/pkg/ptr"
)

// UseCase конвертация заявки в бронирование
// Групповая заявка (больше одного номера) получает категорию и количество,
// индивидуальная - конкретный свободный номер запрошенной категории.
// Заявка конвертируется не более одного раза
type UseCase struct {
	preBookingRepo PreBookingRepository
	bookingRepo    BookingRepository
	roomRepo       RoomRepository
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	preBookingRepo PreBookingRepository,
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		preBookingRepo: preBookingRepo,
		bookingRepo:    bookingRepo,
		roomRepo:       roomRepo,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute конвертирует заявку в бронирование
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConvertPreBooking: pre-booking=%d", req.PreBookingID)

	// 1. Валидация входных данных
	if req.PreBookingID <= 0 {
		return nil, fmt.Errorf("%w: preBookingID must be positive", ErrInvalidInput)
	}

	requestedTotal, requestedAdvance, err := parseMoneyOverrides(req)
	if err != nil {
		uc.logger.Warn("ConvertPreBooking: invalid money overrides for pre-booking=%d: %v", req.PreBookingID, err)
		return nil, err
	}

	var result *Response

	// 2. Конвертация выполняется в сериализуемой транзакции:
	// заявка блокируется, и двойная конвертация невозможна
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Заявка с блокировкой строки
		preBooking, err := uc.preBookingRepo.GetByID(txCtx, req.PreBookingID)
		if err != nil {
			if errors.Is(err, preBookingRepo.ErrPreBookingNotFound) {
				uc.logger.Warn("ConvertPreBooking: pre-booking id=%d not found", req.PreBookingID)
				return ErrPreBookingNotFound
			}
			uc.logger.Error("ConvertPreBooking: lookup failed for id=%d: %v", req.PreBookingID, err)
			return fmt.Errorf("%w: lookup failed: %v", ErrInternal, err)
		}

		if !preBooking.CanConvert() {
			uc.logger.Warn("ConvertPreBooking: pre-booking id=%d status=%s cannot be converted",
				preBooking.ID, preBooking.Status)
			return ErrAlreadyConverted
		}

		// 2.2. Тариф категории для вывода сумм
		roomType, err := uc.roomRepo.GetType(txCtx, preBooking.RoomTypeID)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomTypeNotFound) {
				return ErrRoomTypeNotFound
			}
			uc.logger.Error("ConvertPreBooking: room type lookup failed for id=%d: %v", preBooking.RoomTypeID, err)
			return fmt.Errorf("%w: room type lookup failed: %v", ErrInternal, err)
		}

		// 2.3. Суммы: присланные значения сохраняются, отсутствующие выводятся
		// total = тариф x количество номеров x ночи; аванс = 10% от total
		totalAmount := roomType.DailyRate.
			Mul(decimal.NewFromInt(int64(preBooking.NumberOfRooms))).
			Mul(decimal.NewFromInt(int64(preBooking.NightCount())))
		if requestedTotal != nil {
			totalAmount = *requestedTotal
		}

		advancePayment := totalAmount.Mul(domain.AdvancePaymentRate).Round(2)
		if requestedAdvance != nil {
			advancePayment = *requestedAdvance
		}

		booking := &domain.Booking{
			ReferenceCode:  preBooking.ReferenceCode,
			CustomerID:     preBooking.CustomerID,
			GuestID:        preBooking.GuestID,
			BranchID:       preBooking.BranchID,
			RoomTypeID:     ptr.Ptr(preBooking.RoomTypeID),
			RoomQuantity:   preBooking.NumberOfRooms,
			IsGroupBooking: preBooking.IsGroup(),
			CheckInDate:    preBooking.CheckInDate,
			CheckOutDate:   preBooking.CheckOutDate,
			Nights:         preBooking.NightCount(),
			Adults:         preBooking.Adults,
			Children:       preBooking.Children,
			Status:         domain.StatusBooked,
			TotalAmount:    totalAmount,
			AdvancePayment: advancePayment,
			Meta: domain.BookingMeta{
				SpecialRequests: req.Notes,
			},
		}
		if booking.Meta.SpecialRequests == nil {
			booking.Meta.SpecialRequests = preBooking.Notes
		}

		// 2.4. Индивидуальная заявка получает номер, выбранный оператором
		// из свободных номеров запрошенной категории;
		// групповая остается на уровне категории и количества
		if preBooking.IsGroup() {
			if req.RoomID != nil {
				uc.logger.Warn("ConvertPreBooking: room id=%d supplied for group pre-booking=%d",
					*req.RoomID, preBooking.ID)
				return fmt.Errorf("%w: roomId is not applicable to a group pre-booking", ErrInvalidInput)
			}
		} else {
			if req.RoomID == nil {
				uc.logger.Warn("ConvertPreBooking: room not selected for pre-booking=%d", preBooking.ID)
				return fmt.Errorf("%w: roomId is required for an individual pre-booking", ErrInvalidInput)
			}

			available, err := uc.roomRepo.ListAvailableByType(txCtx, preBooking.RoomTypeID, ptr.Ptr(preBooking.BranchID))
			if err != nil {
				uc.logger.Error("ConvertPreBooking: availability lookup failed for type=%d: %v", preBooking.RoomTypeID, err)
				return fmt.Errorf("%w: availability lookup failed: %v", ErrInternal, err)
			}
			if len(available) == 0 {
				uc.logger.Warn("ConvertPreBooking: no rooms of type=%d available for pre-booking=%d",
					preBooking.RoomTypeID, preBooking.ID)
				return ErrNoRoomsAvailable
			}

			room := pickRoom(available, *req.RoomID)
			if room == nil {
				uc.logger.Warn("ConvertPreBooking: room id=%d is not among available rooms of type=%d",
					*req.RoomID, preBooking.RoomTypeID)
				return ErrRoomNotAvailable
			}

			booking.RoomID = ptr.Ptr(room.ID)
			booking.RoomNumber = ptr.Ptr(room.Number)

			if err := uc.roomRepo.UpdateStatus(txCtx, room.ID, domain.RoomReserved); err != nil {
				uc.logger.Error("ConvertPreBooking: room reserve failed for id=%d: %v", room.ID, err)
				return fmt.Errorf("%w: room reserve failed: %v", ErrInternal, err)
			}
		}

		// 2.5. Создаем бронирование
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("ConvertPreBooking: booking create failed for pre-booking=%d: %v", preBooking.ID, err)
			return fmt.Errorf("%w: booking create failed: %v", ErrInternal, err)
		}

		// 2.6. Помечаем заявку конвертированной
		// WHERE status = pending в репозитории защищает от двойной конвертации
		if err := uc.preBookingRepo.MarkConverted(txCtx, preBooking.ID); err != nil {
			if errors.Is(err, preBookingRepo.ErrAlreadyConverted) {
				return ErrAlreadyConverted
			}
			uc.logger.Error("ConvertPreBooking: mark converted failed for id=%d: %v", preBooking.ID, err)
			return fmt.Errorf("%w: mark converted failed: %v", ErrInternal, err)
		}

		result = toResponse(created, preBooking.ID)
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ConvertPreBooking: pre-booking=%d converted to booking=%d (group=%t)",
		req.PreBookingID, result.BookingID, result.IsGroupBooking)
	return result, nil
}

// pickRoom находит выбранный оператором номер среди свободных
func pickRoom(available []*domain.Room, roomID int64) *domain.Room {
	for _, r := range available {
		if r.ID == roomID {
			return r
		}
	}
	return nil
}

// parseMoneyOverrides валидирует присланные суммы
func parseMoneyOverrides(req *Request) (*decimal.Decimal, *decimal.Decimal, error) {
	var total, advance *decimal.Decimal

	if req.TotalAmount != nil {
		parsed, err := decimal.NewFromString(*req.TotalAmount)
		if err != nil || parsed.IsNegative() {
			return nil, nil, fmt.Errorf("%w: invalid total amount", ErrInvalidInput)
		}
		total = &parsed
	}

	if req.AdvancePayment != nil {
		parsed, err := decimal.NewFromString(*req.AdvancePayment)
		if err != nil || parsed.IsNegative() {
			return nil, nil, fmt.Errorf("%w: invalid advance payment", ErrInvalidInput)
		}
		advance = &parsed
	}

	return total, advance, nil
}
