package service_usage

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMS-FrontdeskService/internal/api/handlers"
	"github.com/m04kA/HMS-FrontdeskService/internal/service/serviceusage"
	"github.com/m04kA/HMS-FrontdeskService/internal/service/serviceusage/models"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidUsageData   = "некорректные данные услуги"
	msgInvalidFilter      = "некорректные параметры фильтрации"
	msgBookingNotFound    = "бронирование не найдено"
	msgBookingNotActive   = "начисление возможно только по заселенному бронированию"
)

type Handler struct {
	service ServiceUsageService
	logger  Logger
}

func NewHandler(service ServiceUsageService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/service-usage
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.QueryInt64(r, "bookingId")
	if err != nil {
		h.logger.Warn("GET /service-usage - Invalid filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	page, limit := handlers.QueryPage(r)
	req := &models.ListUsageRequest{
		BookingID:  bookingID,
		Department: handlers.QueryString(r, "department"),
		Page:       page,
		Limit:      limit,
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /service-usage - Failed to list usages: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /service-usage - Listed %d usages", len(result.Usages))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleCreate POST /api/v1/service-usage
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUsageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /service-usage - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, serviceusage.ErrInvalidInput):
			h.logger.Warn("POST /service-usage - Invalid usage data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidUsageData)

		case errors.Is(err, serviceusage.ErrBookingNotFound):
			h.logger.Warn("POST /service-usage - Booking not found: booking_id=%d", req.BookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, serviceusage.ErrBookingNotActive):
			h.logger.Warn("POST /service-usage - Booking not active: booking_id=%d", req.BookingID)
			handlers.RespondConflict(w, msgBookingNotActive)

		default:
			h.logger.Error("POST /service-usage - Failed to create usage: booking_id=%d error=%v", req.BookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /service-usage - Usage created: usage_id=%d booking_id=%d amount=%s",
		result.ID, result.BookingID, result.Amount)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleListByBooking GET /api/v1/bookings/{bookingId}/service-usage
func (h *Handler) HandleListByBooking(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.ParseID(mux.Vars(r)["bookingId"])
	if err != nil {
		h.logger.Warn("GET /bookings/{id}/service-usage - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	result, err := h.service.ListByBooking(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, serviceusage.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id}/service-usage - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)
		default:
			h.logger.Error("GET /bookings/{id}/service-usage - Failed: booking_id=%d error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
