package convert_pre_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMS-FrontdeskService/internal/api/handlers"
	convertPreBooking "github.com/m04kA/HMS-FrontdeskService/internal/usecase/convert_prebooking"
)

const (
	msgInvalidPreBookingID = "некорректный ID заявки"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgNotFound            = "заявка не найдена"
	msgAlreadyConverted    = "заявка уже конвертирована или отменена"
	msgNoRoomsAvailable    = "нет свободных номеров запрошенной категории"
	msgRoomNotAvailable    = "выбранный номер не свободен или не относится к запрошенной категории"
	msgRoomTypeNotFound    = "категория номера не найдена"
)

type Handler struct {
	useCase ConvertPreBookingUseCase
	logger  Logger
}

func NewHandler(useCase ConvertPreBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/pre-bookings/{preBookingId}/convert
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	preBookingID, err := handlers.ParseID(mux.Vars(r)["preBookingId"])
	if err != nil {
		h.logger.Warn("POST /pre-bookings/{id}/convert - Invalid pre-booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPreBookingID)
		return
	}

	var req convertPreBooking.Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /pre-bookings/{id}/convert - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.PreBookingID = preBookingID

	result, err := h.useCase.Execute(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, convertPreBooking.ErrInvalidInput):
			h.logger.Warn("POST /pre-bookings/{id}/convert - Invalid input: pre_booking_id=%d", preBookingID)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, convertPreBooking.ErrPreBookingNotFound):
			h.logger.Warn("POST /pre-bookings/{id}/convert - Not found: pre_booking_id=%d", preBookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, convertPreBooking.ErrRoomTypeNotFound):
			h.logger.Warn("POST /pre-bookings/{id}/convert - Room type not found: pre_booking_id=%d", preBookingID)
			handlers.RespondNotFound(w, msgRoomTypeNotFound)

		case errors.Is(err, convertPreBooking.ErrAlreadyConverted):
			h.logger.Warn("POST /pre-bookings/{id}/convert - Already converted: pre_booking_id=%d", preBookingID)
			handlers.RespondConflict(w, msgAlreadyConverted)

		case errors.Is(err, convertPreBooking.ErrNoRoomsAvailable):
			h.logger.Warn("POST /pre-bookings/{id}/convert - No rooms available: pre_booking_id=%d", preBookingID)
			handlers.RespondConflict(w, msgNoRoomsAvailable)

		case errors.Is(err, convertPreBooking.ErrRoomNotAvailable):
			h.logger.Warn("POST /pre-bookings/{id}/convert - Requested room not available: pre_booking_id=%d", preBookingID)
			handlers.RespondConflict(w, msgRoomNotAvailable)

		default:
			h.logger.Error("POST /pre-bookings/{id}/convert - Failed: pre_booking_id=%d error=%v", preBookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /pre-bookings/{id}/convert - Converted: pre_booking_id=%d booking_id=%d group=%t",
		preBookingID, result.BookingID, result.IsGroupBooking)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
