package list_bookings

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

// Handle GET /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := requestFromQuery(r)
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
		default:
			h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Listed %d bookings", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// requestFromQuery собирает фильтр списка из query-параметров
func requestFromQuery(r *http.Request) (*models.ListBookingsRequest, error) {
	branchID, err := handlers.QueryInt64(r, "branchId")
	if err != nil {
		return nil, err
	}
	roomTypeID, err := handlers.QueryInt64(r, "roomTypeId")
	if err != nil {
		return nil, err
	}

	page, limit := handlers.QueryPage(r)

	return &models.ListBookingsRequest{
		BranchID:   branchID,
		RoomTypeID: roomTypeID,
		Status:     handlers.QueryString(r, "status"),
		StartDate:  handlers.QueryString(r, "startDate"),
		EndDate:    handlers.QueryString(r, "endDate"),
		Search:     handlers.QueryString(r, "search"),
		Page:       page,
		Limit:      limit,
	}, nil
}
