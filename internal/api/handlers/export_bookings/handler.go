package export_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/HMS-FrontdeskService/internal/api/handlers"
	"github.com/m04kA/HMS-FrontdeskService/internal/service/bookings"
	"github.com/m04kA/HMS-FrontdeskService/internal/service/bookings/models"
)

const (
	msgInvalidFilter = "некорректные параметры фильтрации"
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

// Handle GET /api/v1/bookings/export
// Выгрузка уважает фильтры списка, но не пагинацию
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	branchID, err := handlers.QueryInt64(r, "branchId")
	if err != nil {
		h.logger.Warn("GET /bookings/export - Invalid filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}
	roomTypeID, err := handlers.QueryInt64(r, "roomTypeId")
	if err != nil {
		h.logger.Warn("GET /bookings/export - Invalid filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	req := &models.ListBookingsRequest{
		BranchID:   branchID,
		RoomTypeID: roomTypeID,
		Status:     handlers.QueryString(r, "status"),
		StartDate:  handlers.QueryString(r, "startDate"),
		EndDate:    handlers.QueryString(r, "endDate"),
		Search:     handlers.QueryString(r, "search"),
	}

	data, err := h.service.ExportCSV(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings/export - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
		default:
			h.logger.Error("GET /bookings/export - Export failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/export - Exported %d bytes", len(data))
	handlers.RespondCSV(w, "bookings", data)
}
