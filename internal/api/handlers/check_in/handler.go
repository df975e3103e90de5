package check_in

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMS-FrontdeskService/internal/api/handlers"
	checkIn "github.com/m04kA/HMS-FrontdeskService/internal/usecase/check_in"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgBookingNotFound    = "бронирование не найдено"
	msgBookingNotEligible = "статус бронирования не допускает заселение"
	msgSessionNotFound    = "сессия заселения не найдена, начните заселение заново"
	msgSessionCompleted   = "заселение уже завершено"
	msgAlreadyFirstStep   = "это первый шаг мастера"
	msgNotFinalStep       = "завершение возможно только с последнего шага"
	msgRoomNotFound       = "номер не найден"
	msgRoomNotBookable    = "номер недоступен для заселения"
)

type Handler struct {
	useCase CheckInUseCase
	logger  Logger
}

func NewHandler(useCase CheckInUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleStart POST /api/v1/bookings/{bookingId}/check-in/start
// Открывает мастер заселения или возвращает прерванную сессию
func (h *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := h.bookingID(w, r)
	if !ok {
		return
	}

	result, err := h.useCase.Start(r.Context(), bookingID)
	if err != nil {
		h.respondUseCaseError(w, "POST /bookings/{id}/check-in/start", bookingID, err)
		return
	}

	h.logger.Info("POST /bookings/{id}/check-in/start - Session at step=%s: booking_id=%d", result.StepName, bookingID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleGet GET /api/v1/bookings/{bookingId}/check-in
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := h.bookingID(w, r)
	if !ok {
		return
	}

	result, err := h.useCase.Get(r.Context(), bookingID)
	if err != nil {
		h.respondUseCaseError(w, "GET /bookings/{id}/check-in", bookingID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleNext POST /api/v1/bookings/{bookingId}/check-in/next
// Сохраняет данные шага и переходит вперед, если guard шага выполнен
func (h *Handler) HandleNext(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := h.bookingID(w, r)
	if !ok {
		return
	}

	var data checkIn.StepData
	if err := handlers.DecodeJSON(r, &data); err != nil {
		h.logger.Warn("POST /bookings/{id}/check-in/next - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Next(r.Context(), &checkIn.NextRequest{BookingID: bookingID, Data: data})
	if err != nil {
		h.respondUseCaseError(w, "POST /bookings/{id}/check-in/next", bookingID, err)
		return
	}

	h.logger.Info("POST /bookings/{id}/check-in/next - Advanced to step=%s: booking_id=%d", result.StepName, bookingID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandlePrevious POST /api/v1/bookings/{bookingId}/check-in/previous
func (h *Handler) HandlePrevious(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := h.bookingID(w, r)
	if !ok {
		return
	}

	result, err := h.useCase.Previous(r.Context(), bookingID)
	if err != nil {
		h.respondUseCaseError(w, "POST /bookings/{id}/check-in/previous", bookingID, err)
		return
	}

	h.logger.Info("POST /bookings/{id}/check-in/previous - Moved back to step=%s: booking_id=%d", result.StepName, bookingID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleComplete POST /api/v1/bookings/{bookingId}/check-in/complete
// Атомарное завершение: либо заселение применяется целиком, либо никак
func (h *Handler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := h.bookingID(w, r)
	if !ok {
		return
	}

	result, err := h.useCase.Complete(r.Context(), bookingID)
	if err != nil {
		h.respondUseCaseError(w, "POST /bookings/{id}/check-in/complete", bookingID, err)
		return
	}

	h.logger.Info("POST /bookings/{id}/check-in/complete - Checked in: booking_id=%d room=%s", bookingID, result.RoomNumber)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) bookingID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	bookingID, err := handlers.ParseID(mux.Vars(r)["bookingId"])
	if err != nil {
		h.logger.Warn("check-in - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return 0, false
	}
	return bookingID, true
}

func (h *Handler) respondUseCaseError(w http.ResponseWriter, route string, bookingID int64, err error) {
	switch {
	case errors.Is(err, checkIn.ErrBookingNotFound):
		h.logger.Warn("%s - Booking not found: booking_id=%d", route, bookingID)
		handlers.RespondNotFound(w, msgBookingNotFound)

	case errors.Is(err, checkIn.ErrSessionNotFound):
		h.logger.Warn("%s - Session not found: booking_id=%d", route, bookingID)
		handlers.RespondNotFound(w, msgSessionNotFound)

	case errors.Is(err, checkIn.ErrRoomNotFound):
		h.logger.Warn("%s - Room not found: booking_id=%d", route, bookingID)
		handlers.RespondNotFound(w, msgRoomNotFound)

	case errors.Is(err, checkIn.ErrBookingNotEligible):
		h.logger.Warn("%s - Booking not eligible: booking_id=%d", route, bookingID)
		handlers.RespondConflict(w, msgBookingNotEligible)

	case errors.Is(err, checkIn.ErrSessionCompleted):
		h.logger.Warn("%s - Session already completed: booking_id=%d", route, bookingID)
		handlers.RespondConflict(w, msgSessionCompleted)

	case errors.Is(err, checkIn.ErrStepIncomplete):
		// Текст требования шага уходит оператору как есть
		h.logger.Warn("%s - Step incomplete: booking_id=%d", route, bookingID)
		handlers.RespondUnprocessable(w, err.Error())

	case errors.Is(err, checkIn.ErrAlreadyFirstStep):
		h.logger.Warn("%s - Already at first step: booking_id=%d", route, bookingID)
		handlers.RespondConflict(w, msgAlreadyFirstStep)

	case errors.Is(err, checkIn.ErrNotFinalStep):
		h.logger.Warn("%s - Not at final step: booking_id=%d", route, bookingID)
		handlers.RespondConflict(w, msgNotFinalStep)

	case errors.Is(err, checkIn.ErrRoomNotBookable):
		h.logger.Warn("%s - Room not bookable: booking_id=%d", route, bookingID)
		handlers.RespondConflict(w, msgRoomNotBookable)

	default:
		h.logger.Error("%s - Failed: booking_id=%d error=%v", route, bookingID, err)
		handlers.RespondInternalError(w)
	}
}
