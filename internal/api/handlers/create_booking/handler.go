package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/HMS-FrontdeskService/internal/api/handlers"
	"github.com/m04kA/HMS-FrontdeskService/internal/service/bookings"
	"github.com/m04kA/HMS-FrontdeskService/internal/service/bookings/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBooking     = "некорректные данные бронирования"
	msgGuestNotFound      = "гость не найден"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid booking data ref=%s: %v", req.ReferenceCode, err)
			handlers.RespondBadRequest(w, msgInvalidBooking)

		case errors.Is(err, bookings.ErrGuestNotFound):
			h.logger.Warn("POST /bookings - Guest not found: guest_id=%d", req.GuestID)
			handlers.RespondNotFound(w, msgGuestNotFound)

		default:
			h.logger.Error("POST /bookings - Failed to create booking ref=%s: %v", req.ReferenceCode, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d ref=%s", result.ID, result.ReferenceCode)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
