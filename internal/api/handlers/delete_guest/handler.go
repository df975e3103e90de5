package delete_guest

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMS-FrontdeskService/internal/api/handlers"
	"github.com/m04kA/HMS-FrontdeskService/internal/service/guests"
)

const (
	msgInvalidGuestID = "некорректный ID гостя"
	msgGuestNotFound  = "гость не найден"
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

// Handle DELETE /api/v1/guests/{guestId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	guestID, err := handlers.ParseID(mux.Vars(r)["guestId"])
	if err != nil {
		h.logger.Warn("DELETE /guests/{id} - Invalid guest ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGuestID)
		return
	}

	if err := h.service.Delete(r.Context(), guestID); err != nil {
		switch {
		case errors.Is(err, guests.ErrGuestNotFound):
			h.logger.Warn("DELETE /guests/{id} - Not found: guest_id=%d", guestID)
			handlers.RespondNotFound(w, msgGuestNotFound)
		default:
			h.logger.Error("DELETE /guests/{id} - Failed: guest_id=%d error=%v", guestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /guests/{id} - Guest deleted: guest_id=%d", guestID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
