package update_guest

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMS-FrontdeskService/internal/api/handlers"
	"github.com/m04kA/HMS-FrontdeskService/internal/service/guests"
	"github.com/m04kA/HMS-FrontdeskService/internal/service/guests/models"
)

const (
	msgInvalidGuestID     = "некорректный ID гостя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidGuestData   = "некорректные данные гостя"
	msgGuestNotFound      = "гость не найден"
)

type Handler struct {
	service GuestService
	logger  Logger
}

func NewHandler(service GuestService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/guests/{guestId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	guestID, err := handlers.ParseID(mux.Vars(r)["guestId"])
	if err != nil {
		h.logger.Warn("PUT /guests/{id} - Invalid guest ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGuestID)
		return
	}

	var req models.UpdateGuestRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /guests/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), guestID, &req)
	if err != nil {
		switch {
		case errors.Is(err, guests.ErrInvalidInput):
			h.logger.Warn("PUT /guests/{id} - Invalid guest data: guest_id=%d error=%v", guestID, err)
			handlers.RespondBadRequest(w, msgInvalidGuestData)

		case errors.Is(err, guests.ErrGuestNotFound):
			h.logger.Warn("PUT /guests/{id} - Not found: guest_id=%d", guestID)
			handlers.RespondNotFound(w, msgGuestNotFound)

		default:
			h.logger.Error("PUT /guests/{id} - Failed: guest_id=%d error=%v", guestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /guests/{id} - Guest updated: guest_id=%d", guestID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
