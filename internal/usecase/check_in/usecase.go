package check_in

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
	bookingRepo "github.com/m04kA/HMS-FrontdeskService/internal/infra/storage/booking"
	checkinRepo "github.com/m04kA/HMS-FrontdeskService/internal/infra/storage/checkin"
	roomRepo "github.com/m04kA/HMS-FrontdeskService/internal/infra/storage/room"
)

// UseCase мастер заселения: четыре строго линейных шага
// Состояние хранится в БД и переживает падение терминала стойки
type UseCase struct {
	checkInRepo  CheckInRepository
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	checkInRepo CheckInRepository,
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		checkInRepo:  checkInRepo,
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Start открывает сессию мастера для бронирования или возвращает существующую
func (uc *UseCase) Start(ctx context.Context, bookingID int64) (*SessionResponse, error) {
	uc.logger.Info("CheckIn.Start: booking=%d", bookingID)

	// 1. Получаем бронирование и проверяем готовность к заселению
	booking, err := uc.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !booking.CanCheckIn() {
		uc.logger.Warn("CheckIn.Start: booking id=%d not eligible, status=%s", bookingID, booking.Status)
		return nil, ErrBookingNotEligible
	}

	// 2. Возвращаем существующую сессию, если мастер уже открывали
	session, err := uc.checkInRepo.GetSessionByBookingID(ctx, bookingID)
	if err == nil {
		if session.IsCompleted() {
			return nil, ErrSessionCompleted
		}
		uc.logger.Info("CheckIn.Start: resuming session id=%d at step=%s", session.ID, session.Step)
		return toSessionResponse(session, booking), nil
	}
	if !errors.Is(err, checkinRepo.ErrSessionNotFound) {
		uc.logger.Error("CheckIn.Start: session lookup failed for booking=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: session lookup failed: %v", ErrInternal, err)
	}

	// 3. Создаем новую сессию на первом шаге
	session, err = uc.checkInRepo.CreateSession(ctx, &domain.CheckInSession{
		BookingID: bookingID,
		Step:      domain.StepGuestVerification,
	})
	if err != nil {
		uc.logger.Error("CheckIn.Start: session create failed for booking=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: session create failed: %v", ErrInternal, err)
	}

	uc.logger.Info("CheckIn.Start: created session id=%d for booking=%d", session.ID, bookingID)
	return toSessionResponse(session, booking), nil
}

// Get возвращает текущее состояние сессии мастера
func (uc *UseCase) Get(ctx context.Context, bookingID int64) (*SessionResponse, error) {
	booking, err := uc.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	session, err := uc.getSession(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	return toSessionResponse(session, booking), nil
}

// Next сохраняет данные текущего шага и переходит вперед
// Переход разрешен только при выполненном guard шага; невыполненный guard
// возвращает ErrStepIncomplete, сохранив введенные данные
func (uc *UseCase) Next(ctx context.Context, req *NextRequest) (*SessionResponse, error) {
	uc.logger.Info("CheckIn.Next: booking=%d", req.BookingID)

	booking, err := uc.getBooking(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}

	session, err := uc.getSession(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}

	// 1. Применяем данные текущего шага
	if err := uc.applyStepData(ctx, session, &req.Data); err != nil {
		return nil, err
	}

	// 2. Guard: вперед только с выполненным шагом. Данные при этом сохраняем,
	// чтобы оператор не вводил их заново
	if !session.StepComplete() {
		if err := uc.checkInRepo.UpdateSession(ctx, session); err != nil {
			uc.logger.Error("CheckIn.Next: session save failed for booking=%d: %v", req.BookingID, err)
			return nil, fmt.Errorf("%w: session save failed: %v", ErrInternal, err)
		}
		uc.logger.Warn("CheckIn.Next: step=%s incomplete for booking=%d", session.Step, req.BookingID)
		return nil, fmt.Errorf("%w: %s", ErrStepIncomplete, stepRequirement(session.Step))
	}

	// 3. Последний шаг завершается только через Complete
	if session.IsFinalStep() {
		if err := uc.checkInRepo.UpdateSession(ctx, session); err != nil {
			uc.logger.Error("CheckIn.Next: session save failed for booking=%d: %v", req.BookingID, err)
			return nil, fmt.Errorf("%w: session save failed: %v", ErrInternal, err)
		}
		return toSessionResponse(session, booking), nil
	}

	// 4. Переходим вперед и сохраняем
	session.Step++
	if err := uc.checkInRepo.UpdateSession(ctx, session); err != nil {
		uc.logger.Error("CheckIn.Next: session save failed for booking=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: session save failed: %v", ErrInternal, err)
	}

	uc.logger.Info("CheckIn.Next: booking=%d advanced to step=%s", req.BookingID, session.Step)
	return toSessionResponse(session, booking), nil
}

// Previous возвращается на шаг назад, сохраняя введенные данные
// С первого шага вернуться нельзя
func (uc *UseCase) Previous(ctx context.Context, bookingID int64) (*SessionResponse, error) {
	uc.logger.Info("CheckIn.Previous: booking=%d", bookingID)

	booking, err := uc.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	session, err := uc.getSession(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if session.IsFirstStep() {
		uc.logger.Warn("CheckIn.Previous: booking=%d already at first step", bookingID)
		return nil, ErrAlreadyFirstStep
	}

	session.Step--
	if err := uc.checkInRepo.UpdateSession(ctx, session); err != nil {
		uc.logger.Error("CheckIn.Previous: session save failed for booking=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: session save failed: %v", ErrInternal, err)
	}

	uc.logger.Info("CheckIn.Previous: booking=%d moved back to step=%s", bookingID, session.Step)
	return toSessionResponse(session, booking), nil
}

// Complete завершает мастер: одна сериализуемая транзакция создает запись
// о заселении, переводит бронирование в checked_in, занимает номер и
// закрывает сессию. Либо применяется всё, либо ничего
func (uc *UseCase) Complete(ctx context.Context, bookingID int64) (*CompleteResponse, error) {
	uc.logger.Info("CheckIn.Complete: booking=%d", bookingID)

	now := uc.timeProvider.Now()

	var result *CompleteResponse

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Сессия с блокировкой строки
		session, err := uc.getSession(txCtx, bookingID)
		if err != nil {
			return err
		}

		// 2. Завершение только с последнего шага и только с выполненными guard
		if !session.IsFinalStep() {
			uc.logger.Warn("CheckIn.Complete: booking=%d at step=%s, not final", bookingID, session.Step)
			return ErrNotFinalStep
		}
		if !session.StepComplete() {
			uc.logger.Warn("CheckIn.Complete: final step incomplete for booking=%d", bookingID)
			return fmt.Errorf("%w: %s", ErrStepIncomplete, stepRequirement(session.Step))
		}

		// 3. Бронирование с блокировкой строки
		booking, err := uc.getBooking(txCtx, bookingID)
		if err != nil {
			return err
		}
		if !booking.CanCheckIn() {
			uc.logger.Warn("CheckIn.Complete: booking id=%d not eligible, status=%s", bookingID, booking.Status)
			return ErrBookingNotEligible
		}

		// 4. Назначенный номер должен быть доступен
		room, err := uc.roomRepo.GetByID(txCtx, *session.AssignedRoomID)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				return ErrRoomNotFound
			}
			uc.logger.Error("CheckIn.Complete: room lookup failed for id=%d: %v", *session.AssignedRoomID, err)
			return fmt.Errorf("%w: room lookup failed: %v", ErrInternal, err)
		}
		alreadyAssigned := booking.RoomID != nil && *booking.RoomID == room.ID
		if !room.IsBookable() && !(alreadyAssigned && room.Status == domain.RoomReserved) {
			uc.logger.Warn("CheckIn.Complete: room id=%d not bookable, status=%s", room.ID, room.Status)
			return ErrRoomNotBookable
		}

		// 5. Привязываем номер к бронированию
		if err := uc.bookingRepo.AssignRoom(txCtx, bookingID, room.ID, room.Number); err != nil {
			uc.logger.Error("CheckIn.Complete: room assign failed for booking=%d: %v", bookingID, err)
			return fmt.Errorf("%w: room assign failed: %v", ErrInternal, err)
		}

		// 6. Итоговая запись о заселении
		record, err := uc.checkInRepo.CreateRecord(txCtx, &domain.CheckInRecord{
			BookingID:           bookingID,
			IDType:              *session.IDType,
			IDNumber:            *session.IDNumber,
			SignatureRef:        *session.SignatureRef,
			RoomAssignmentNotes: session.Notes,
			CheckedInAt:         now,
		})
		if err != nil {
			uc.logger.Error("CheckIn.Complete: record create failed for booking=%d: %v", bookingID, err)
			return fmt.Errorf("%w: record create failed: %v", ErrInternal, err)
		}

		// 7. Бронирование переходит в checked_in
		if err := uc.bookingRepo.UpdateStatus(txCtx, bookingID, domain.StatusCheckedIn); err != nil {
			uc.logger.Error("CheckIn.Complete: status update failed for booking=%d: %v", bookingID, err)
			return fmt.Errorf("%w: status update failed: %v", ErrInternal, err)
		}

		// 8. Номер занят
		if err := uc.roomRepo.UpdateStatus(txCtx, room.ID, domain.RoomOccupied); err != nil {
			uc.logger.Error("CheckIn.Complete: room status update failed for id=%d: %v", room.ID, err)
			return fmt.Errorf("%w: room status update failed: %v", ErrInternal, err)
		}

		// 9. Сессия закрывается
		if err := uc.checkInRepo.CompleteSession(txCtx, session.ID, now); err != nil {
			if errors.Is(err, checkinRepo.ErrSessionCompleted) {
				return ErrSessionCompleted
			}
			uc.logger.Error("CheckIn.Complete: session complete failed for booking=%d: %v", bookingID, err)
			return fmt.Errorf("%w: session complete failed: %v", ErrInternal, err)
		}

		result = &CompleteResponse{
			BookingID:   bookingID,
			RecordID:    record.ID,
			RoomID:      room.ID,
			RoomNumber:  room.Number,
			CheckedInAt: now,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CheckIn.Complete: booking=%d checked in to room=%s", bookingID, result.RoomNumber)
	return result, nil
}

// applyStepData переносит данные запроса в поля активного шага
// Поля чужих шагов игнорируются: шаги строго линейны
func (uc *UseCase) applyStepData(ctx context.Context, session *domain.CheckInSession, data *StepData) error {
	switch session.Step {
	case domain.StepGuestVerification:
		if data.IDType != nil {
			session.IDType = data.IDType
		}
		if data.IDNumber != nil {
			session.IDNumber = data.IDNumber
		}
		if data.IDVerified != nil {
			session.IDVerified = *data.IDVerified
		}
	case domain.StepPaymentAcknowledgment:
		if data.DepositConfirmed != nil {
			session.DepositConfirmed = *data.DepositConfirmed
		}
	case domain.StepRoomAssignment:
		if data.AssignedRoomID != nil {
			// Номер проверяется на существование сразу, а на доступность - при Complete
			if _, err := uc.roomRepo.GetByID(ctx, *data.AssignedRoomID); err != nil {
				if errors.Is(err, roomRepo.ErrRoomNotFound) {
					return ErrRoomNotFound
				}
				return fmt.Errorf("%w: room lookup failed: %v", ErrInternal, err)
			}
			session.AssignedRoomID = data.AssignedRoomID
		}
		if data.TermsAccepted != nil {
			session.TermsAccepted = *data.TermsAccepted
		}
	case domain.StepFinalReview:
		if data.SignatureRef != nil {
			session.SignatureRef = data.SignatureRef
		}
		if data.PrivacyAccepted != nil {
			session.PrivacyAccepted = *data.PrivacyAccepted
		}
	}

	if data.Notes != nil {
		session.Notes = data.Notes
	}

	return nil
}

// stepRequirement текст требования шага для сообщения оператору
func stepRequirement(step domain.CheckInStep) string {
	switch step {
	case domain.StepGuestVerification:
		return "укажите тип и номер документа и подтвердите проверку"
	case domain.StepPaymentAcknowledgment:
		return "подтвердите получение аванса"
	case domain.StepRoomAssignment:
		return "назначьте номер и подтвердите условия проживания"
	case domain.StepFinalReview:
		return "приложите подпись гостя и подтвердите согласие на обработку данных"
	default:
		return "шаг не выполнен"
	}
}

func (uc *UseCase) getBooking(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	booking, err := uc.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("CheckIn: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("CheckIn: booking lookup failed for id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: booking lookup failed: %v", ErrInternal, err)
	}
	return booking, nil
}

func (uc *UseCase) getSession(ctx context.Context, bookingID int64) (*domain.CheckInSession, error) {
	session, err := uc.checkInRepo.GetSessionByBookingID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, checkinRepo.ErrSessionNotFound) {
			uc.logger.Warn("CheckIn: session for booking=%d not found", bookingID)
			return nil, ErrSessionNotFound
		}
		uc.logger.Error("CheckIn: session lookup failed for booking=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: session lookup failed: %v", ErrInternal, err)
	}
	if session.IsCompleted() {
		return nil, ErrSessionCompleted
	}
	return session, nil
}
