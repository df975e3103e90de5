package export_guests

import (
	"errors"
	"net/http"

	"github.com/m04kA/HMS-FrontdeskService/internal/api/handlers"
	"github.com/m04kA/HMS-FrontdeskService/internal/service/guests"
	"github.com/m04kA/HMS-FrontdeskService/internal/service/guests/models"
)

const msgInvalidFilter = "некорректные параметры фильтрации"

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

// Handle GET /api/v1/guests/export
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListGuestsRequest{
		Search: handlers.QueryString(r, "search"),
	}

	data, err := h.service.ExportCSV(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, guests.ErrInvalidInput):
			h.logger.Warn("GET /guests/export - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
		default:
			h.logger.Error("GET /guests/export - Failed to export guests: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /guests/export - Exported %d bytes", len(data))
	handlers.RespondCSV(w, "guests", data)
}
