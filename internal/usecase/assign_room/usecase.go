package assign_room

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
	bookingRepo "github.com/m04kA/HMS-FrontdeskService/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/HMS-FrontdeskService/internal/infra/storage/room"
	"github.com/m04kA/HMS-FrontdeskService/pkg/ptr"
)

// UseCase назначение номера бронированию
// Конфликт дат не блокирует назначение: оператор видит предупреждение
// и решает сам. Номера в ремонте не назначаются никогда
type UseCase struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Check проверяет номер для бронирования без назначения:
// конфликты дат и доступные варианты повышения категории
func (uc *UseCase) Check(ctx context.Context, req *Request) (*CheckResponse, error) {
	uc.logger.Info("AssignRoom.Check: booking=%d room=%d", req.BookingID, req.RoomID)

	booking, err := uc.getBooking(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}

	room, err := uc.getRoom(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}

	conflicts, err := uc.bookingRepo.GetRoomConflicts(
		ctx, room.ID, booking.CheckInDate, booking.CheckOutDate, ptr.Ptr(booking.ID),
	)
	if err != nil {
		uc.logger.Error("AssignRoom.Check: conflict lookup failed for room=%d: %v", room.ID, err)
		return nil, fmt.Errorf("%w: conflict lookup failed: %v", ErrInternal, err)
	}

	upgrades, err := uc.suggestUpgrades(ctx, booking, room)
	if err != nil {
		return nil, err
	}

	return &CheckResponse{
		RoomID:    room.ID,
		Conflicts: toConflictInfos(conflicts),
		Upgrades:  upgrades,
	}, nil
}

// Execute назначает номер бронированию
// Конфликты пересчитываются внутри сериализуемой транзакции и
// возвращаются в ответе; собственное бронирование из проверки исключается
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AssignRoom: booking=%d room=%d", req.BookingID, req.RoomID)

	// 1. Валидация входных данных
	if req.BookingID <= 0 || req.RoomID <= 0 {
		return nil, fmt.Errorf("%w: bookingID and roomID must be positive", ErrInvalidInput)
	}

	var result *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2. Бронирование с блокировкой строки
		booking, err := uc.getBooking(txCtx, req.BookingID)
		if err != nil {
			return err
		}

		if !booking.CanAssignRoom() {
			uc.logger.Warn("AssignRoom: booking id=%d status=%s does not allow assignment", booking.ID, booking.Status)
			return ErrBookingNotEligible
		}

		// 3. Номер: в ремонте не назначаем
		room, err := uc.getRoom(txCtx, req.RoomID)
		if err != nil {
			return err
		}
		if room.Status == domain.RoomMaintenance {
			uc.logger.Warn("AssignRoom: room id=%d is under maintenance", room.ID)
			return ErrRoomNotBookable
		}

		// 4. Конфликты дат, исключая само бронирование
		conflicts, err := uc.bookingRepo.GetRoomConflicts(
			txCtx, room.ID, booking.CheckInDate, booking.CheckOutDate, ptr.Ptr(booking.ID),
		)
		if err != nil {
			uc.logger.Error("AssignRoom: conflict lookup failed for room=%d: %v", room.ID, err)
			return fmt.Errorf("%w: conflict lookup failed: %v", ErrInternal, err)
		}
		if len(conflicts) > 0 {
			uc.logger.Warn("AssignRoom: room id=%d has %d date conflicts, assigning anyway", room.ID, len(conflicts))
		}

		// 5. Назначаем номер
		if err := uc.bookingRepo.AssignRoom(txCtx, booking.ID, room.ID, room.Number); err != nil {
			uc.logger.Error("AssignRoom: assignment failed for booking=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: assignment failed: %v", ErrInternal, err)
		}

		// 6. Свободный номер резервируется до заселения
		if room.Status == domain.RoomAvailable {
			if err := uc.roomRepo.UpdateStatus(txCtx, room.ID, domain.RoomReserved); err != nil {
				uc.logger.Error("AssignRoom: room status update failed for id=%d: %v", room.ID, err)
				return fmt.Errorf("%w: room status update failed: %v", ErrInternal, err)
			}
		}

		// 7. Варианты повышения категории для оператора
		upgrades, err := uc.suggestUpgrades(txCtx, booking, room)
		if err != nil {
			return err
		}

		result = &Response{
			BookingID:  booking.ID,
			RoomID:     room.ID,
			RoomNumber: room.Number,
			Conflicts:  toConflictInfos(conflicts),
			Upgrades:   upgrades,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("AssignRoom: booking=%d assigned room=%s (%d conflicts)",
		req.BookingID, result.RoomNumber, len(result.Conflicts))
	return result, nil
}

// suggestUpgrades подбирает категории дороже текущей с достаточной
// вместимостью и свободными номерами
func (uc *UseCase) suggestUpgrades(ctx context.Context, booking *domain.Booking, room *domain.Room) ([]UpgradeSuggestion, error) {
	currentType, err := uc.roomRepo.GetType(ctx, room.RoomTypeID)
	if err != nil {
		uc.logger.Error("AssignRoom: room type lookup failed for id=%d: %v", room.RoomTypeID, err)
		return nil, fmt.Errorf("%w: room type lookup failed: %v", ErrInternal, err)
	}

	allTypes, err := uc.roomRepo.ListTypes(ctx)
	if err != nil {
		uc.logger.Error("AssignRoom: room types listing failed: %v", err)
		return nil, fmt.Errorf("%w: room types listing failed: %v", ErrInternal, err)
	}

	suggestions := make([]UpgradeSuggestion, 0)
	for _, t := range allTypes {
		if !t.IsUpgradeFor(currentType, booking.PartySize()) {
			continue
		}

		available, err := uc.roomRepo.ListAvailableByType(ctx, t.ID, ptr.Ptr(booking.BranchID))
		if err != nil {
			uc.logger.Error("AssignRoom: availability lookup failed for type=%d: %v", t.ID, err)
			return nil, fmt.Errorf("%w: availability lookup failed: %v", ErrInternal, err)
		}
		if len(available) == 0 {
			continue
		}

		suggestions = append(suggestions, UpgradeSuggestion{
			RoomTypeID:     t.ID,
			RoomTypeName:   t.Name,
			DailyRate:      t.DailyRate.StringFixed(2),
			Capacity:       t.Capacity,
			AvailableRooms: len(available),
		})
	}

	return suggestions, nil
}

func (uc *UseCase) getBooking(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	booking, err := uc.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("AssignRoom: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("AssignRoom: booking lookup failed for id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: booking lookup failed: %v", ErrInternal, err)
	}
	return booking, nil
}

func (uc *UseCase) getRoom(ctx context.Context, roomID int64) (*domain.Room, error) {
	room, err := uc.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("AssignRoom: room id=%d not found", roomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("AssignRoom: room lookup failed for id=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: room lookup failed: %v", ErrInternal, err)
	}
	return room, nil
}
