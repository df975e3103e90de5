package cancel_pre_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMS-FrontdeskService/internal/api/handlers"
	"github.com/m04kA/HMS-FrontdeskService/internal/service/prebookings"
)

const (
	msgInvalidPreBookingID = "некорректный ID заявки"
	msgNotFound            = "заявка не найдена"
	msgAlreadyConverted    = "заявка уже конвертирована или отменена"
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

// Handle PATCH /api/v1/pre-bookings/{preBookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	preBookingID, err := handlers.ParseID(mux.Vars(r)["preBookingId"])
	if err != nil {
		h.logger.Warn("PATCH /pre-bookings/{id}/cancel - Invalid pre-booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPreBookingID)
		return
	}

	if err := h.service.Cancel(r.Context(), preBookingID); err != nil {
		switch {
		case errors.Is(err, prebookings.ErrPreBookingNotFound):
			h.logger.Warn("PATCH /pre-bookings/{id}/cancel - Not found: pre_booking_id=%d", preBookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, prebookings.ErrAlreadyConverted):
			h.logger.Warn("PATCH /pre-bookings/{id}/cancel - Already converted: pre_booking_id=%d", preBookingID)
			handlers.RespondConflict(w, msgAlreadyConverted)

		default:
			h.logger.Error("PATCH /pre-bookings/{id}/cancel - Failed: pre_booking_id=%d error=%v", preBookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /pre-bookings/{id}/cancel - Cancelled: pre_booking_id=%d", preBookingID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
