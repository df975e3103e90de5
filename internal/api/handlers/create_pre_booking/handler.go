package create_pre_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/HMS-FrontdeskService/internal/api/handlers"
	"github.com/m04kA/HMS-FrontdeskService/internal/service/prebookings"
	"github.com/m04kA/HMS-FrontdeskService/internal/service/prebookings/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidPreBooking  = "некорректные данные заявки"
	msgGuestNotFound      = "гость не найден"
)

type Handler struct {
	service PreBookingService
	logger  Logger
}

func NewHandler(service PreBookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/pre-bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePreBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /pre-bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, prebookings.ErrInvalidInput):
			h.logger.Warn("POST /pre-bookings - Invalid data ref=%s: %v", req.ReferenceCode, err)
			handlers.RespondBadRequest(w, msgInvalidPreBooking)

		case errors.Is(err, prebookings.ErrGuestNotFound):
			h.logger.Warn("POST /pre-bookings - Guest not found: guest_id=%d", req.GuestID)
			handlers.RespondNotFound(w, msgGuestNotFound)

		default:
			h.logger.Error("POST /pre-bookings - Failed to create ref=%s: %v", req.ReferenceCode, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /pre-bookings - Pre-booking created: pre_booking_id=%d ref=%s", result.ID, result.ReferenceCode)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
