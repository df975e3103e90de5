package checkout

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMS-FrontdeskService/internal/api/handlers"
	checkoutUC "github.com/m04kA/HMS-FrontdeskService/internal/usecase/checkout"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgBookingNotFound    = "бронирование не найдено"
	msgBookingNotEligible = "гость не заселен, выезд невозможен"
	msgNegativeBalance    = "итоговый платеж превышает баланс, переплата запрещена"
	msgPaymentDeclined    = "платеж отклонен платежным шлюзом"
)

type Handler struct {
	useCase CheckoutUseCase
	logger  Logger
}

func NewHandler(useCase CheckoutUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleFolio GET /api/v1/bookings/{bookingId}/folio
func (h *Handler) HandleFolio(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.ParseID(mux.Vars(r)["bookingId"])
	if err != nil {
		h.logger.Warn("GET /bookings/{id}/folio - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	folio, err := h.useCase.GetFolio(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, checkoutUC.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id}/folio - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)
		default:
			h.logger.Error("GET /bookings/{id}/folio - Failed: booking_id=%d error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{id}/folio - Folio built: booking_id=%d balance=%s", bookingID, folio.Balance)
	handlers.RespondJSON(w, http.StatusOK, folio)
}

// Handle POST /api/v1/bookings/{bookingId}/checkout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.ParseID(mux.Vars(r)["bookingId"])
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/checkout - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req checkoutUC.ExecuteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/checkout - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.BookingID = bookingID

	result, err := h.useCase.Execute(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, checkoutUC.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/checkout - Invalid input: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, checkoutUC.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/checkout - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, checkoutUC.ErrBookingNotEligible):
			h.logger.Warn("POST /bookings/{id}/checkout - Not eligible: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgBookingNotEligible)

		case errors.Is(err, checkoutUC.ErrNegativeBalance):
			h.logger.Warn("POST /bookings/{id}/checkout - Negative balance: booking_id=%d", bookingID)
			handlers.RespondUnprocessable(w, msgNegativeBalance)

		case errors.Is(err, checkoutUC.ErrPaymentDeclined):
			h.logger.Warn("POST /bookings/{id}/checkout - Payment declined: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusPaymentRequired, msgPaymentDeclined)

		default:
			h.logger.Error("POST /bookings/{id}/checkout - Failed: booking_id=%d error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/checkout - Checked out: booking_id=%d final_balance=%s",
		bookingID, result.FinalBalance)
	handlers.RespondJSON(w, http.StatusOK, result)
}
