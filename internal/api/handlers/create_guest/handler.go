package create_guest

import (
	"errors"
	"net/http"

	"github.com/m04kA/HMS-FrontdeskService/internal/api/handlers"
	"github.com/m04kA/HMS-FrontdeskService/internal/service/guests"
	"github.com/m04kA/HMS-FrontdeskService/internal/service/guests/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidGuestData   = "некорректные данные гостя"
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

// Handle POST /api/v1/guests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateGuestRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /guests - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, guests.ErrInvalidInput):
			h.logger.Warn("POST /guests - Invalid guest data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidGuestData)
		default:
			h.logger.Error("POST /guests - Failed to create guest: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /guests - Guest created: guest_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
