package assign_room

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMS-FrontdeskService/internal/api/handlers"
	assignRoom "github.com/m04kA/HMS-FrontdeskService/internal/usecase/assign_room"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRoomID      = "некорректный ID номера"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgBookingNotFound    = "бронирование не найдено"
	msgRoomNotFound       = "номер не найден"
	msgBookingNotEligible = "статус бронирования не допускает назначение номера"
	msgRoomNotBookable    = "номер недоступен для назначения"
)

type Handler struct {
	useCase AssignRoomUseCase
	logger  Logger
}

func NewHandler(useCase AssignRoomUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleCheck GET /api/v1/bookings/{bookingId}/rooms/{roomId}/check
// Проверка без назначения: конфликты дат и варианты повышения категории
func (h *Handler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := handlers.ParseID(vars["bookingId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}
	roomID, err := handlers.ParseID(vars["roomId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	result, err := h.useCase.Check(r.Context(), &assignRoom.Request{BookingID: bookingID, RoomID: roomID})
	if err != nil {
		h.respondUseCaseError(w, "GET /bookings/{id}/rooms/{roomId}/check", bookingID, roomID, err)
		return
	}

	h.logger.Info("GET /bookings/{id}/rooms/{roomId}/check - Checked: booking_id=%d room_id=%d conflicts=%d",
		bookingID, roomID, len(result.Conflicts))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Handle POST /api/v1/bookings/{bookingId}/assign-room
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.ParseID(mux.Vars(r)["bookingId"])
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/assign-room - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req AssignRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/assign-room - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &assignRoom.Request{BookingID: bookingID, RoomID: req.RoomID})
	if err != nil {
		h.respondUseCaseError(w, "POST /bookings/{id}/assign-room", bookingID, req.RoomID, err)
		return
	}

	h.logger.Info("POST /bookings/{id}/assign-room - Room assigned: booking_id=%d room=%s conflicts=%d",
		bookingID, result.RoomNumber, len(result.Conflicts))
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) respondUseCaseError(w http.ResponseWriter, route string, bookingID, roomID int64, err error) {
	switch {
	case errors.Is(err, assignRoom.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: booking_id=%d room_id=%d", route, bookingID, roomID)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)

	case errors.Is(err, assignRoom.ErrBookingNotFound):
		h.logger.Warn("%s - Booking not found: booking_id=%d", route, bookingID)
		handlers.RespondNotFound(w, msgBookingNotFound)

	case errors.Is(err, assignRoom.ErrRoomNotFound):
		h.logger.Warn("%s - Room not found: room_id=%d", route, roomID)
		handlers.RespondNotFound(w, msgRoomNotFound)

	case errors.Is(err, assignRoom.ErrBookingNotEligible):
		h.logger.Warn("%s - Booking not eligible: booking_id=%d", route, bookingID)
		handlers.RespondConflict(w, msgBookingNotEligible)

	case errors.Is(err, assignRoom.ErrRoomNotBookable):
		h.logger.Warn("%s - Room not bookable: room_id=%d", route, roomID)
		handlers.RespondConflict(w, msgRoomNotBookable)

	default:
		h.logger.Error("%s - Failed: booking_id=%d room_id=%d error=%v", route, bookingID, roomID, err)
		handlers.RespondInternalError(w)
	}
}
