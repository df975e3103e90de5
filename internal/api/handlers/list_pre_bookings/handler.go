package list_pre_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMS-FrontdeskService/internal/api/handlers"
	"github.com/m04kA/HMS-FrontdeskService/internal/service/prebookings"
	"github.com/m04kA/HMS-FrontdeskService/internal/service/prebookings/models"
)

const (
	msgInvalidFilter       = "некорректные параметры фильтрации"
	msgInvalidPreBookingID = "некорректный ID заявки"
	msgNotFound            = "заявка не найдена"
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

// Handle GET /api/v1/pre-bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	branchID, err := handlers.QueryInt64(r, "branchId")
	if err != nil {
		h.logger.Warn("GET /pre-bookings - Invalid filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}
	roomTypeID, err := handlers.QueryInt64(r, "roomTypeId")
	if err != nil {
		h.logger.Warn("GET /pre-bookings - Invalid filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	page, limit := handlers.QueryPage(r)
	req := &models.ListPreBookingsRequest{
		BranchID:   branchID,
		RoomTypeID: roomTypeID,
		Status:     handlers.QueryString(r, "status"),
		StartDate:  handlers.QueryString(r, "startDate"),
		EndDate:    handlers.QueryString(r, "endDate"),
		Search:     handlers.QueryString(r, "search"),
		Page:       page,
		Limit:      limit,
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, prebookings.ErrInvalidInput):
			h.logger.Warn("GET /pre-bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
		default:
			h.logger.Error("GET /pre-bookings - Failed to list pre-bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /pre-bookings - Listed %d pre-bookings", len(result.PreBookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleGet GET /api/v1/pre-bookings/{preBookingId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	preBookingID, err := handlers.ParseID(mux.Vars(r)["preBookingId"])
	if err != nil {
		h.logger.Warn("GET /pre-bookings/{id} - Invalid pre-booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPreBookingID)
		return
	}

	result, err := h.service.GetByID(r.Context(), preBookingID)
	if err != nil {
		switch {
		case errors.Is(err, prebookings.ErrPreBookingNotFound):
			h.logger.Warn("GET /pre-bookings/{id} - Not found: pre_booking_id=%d", preBookingID)
			handlers.RespondNotFound(w, msgNotFound)
		default:
			h.logger.Error("GET /pre-bookings/{id} - Failed: pre_booking_id=%d error=%v", preBookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
