package room_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/HMS-FrontdeskService/internal/api/handlers"
	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
	roomAvailability "github.com/m04kA/HMS-FrontdeskService/internal/usecase/room_availability"
)

const (
	msgInvalidDates  = "некорректный период, ожидается startDate и endDate в формате YYYY-MM-DD"
	msgRangeTooWide  = "запрошенный период слишком длинный"
	msgInvalidFilter = "некорректные параметры фильтрации"
)

type Handler struct {
	useCase RoomAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase RoomAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := h.requestFromQuery(r)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		h.respondUseCaseError(w, "GET /rooms/availability", err)
		return
	}

	h.logger.Info("GET /rooms/availability - Matrix built: rooms=%d", len(result.Rooms))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleExport GET /api/v1/rooms/availability/export
func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	req, err := h.requestFromQuery(r)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	data, err := h.useCase.ExportCSV(r.Context(), req)
	if err != nil {
		h.respondUseCaseError(w, "GET /rooms/availability/export", err)
		return
	}

	h.logger.Info("GET /rooms/availability/export - Exported %d bytes", len(data))
	handlers.RespondCSV(w, "availability", data)
}

func (h *Handler) requestFromQuery(r *http.Request) (*roomAvailability.Request, error) {
	start, err := time.Parse(domain.DateFormat, r.URL.Query().Get("startDate"))
	if err != nil {
		h.logger.Warn("rooms/availability - Invalid start date: %v", err)
		return nil, err
	}
	end, err := time.Parse(domain.DateFormat, r.URL.Query().Get("endDate"))
	if err != nil {
		h.logger.Warn("rooms/availability - Invalid end date: %v", err)
		return nil, err
	}
	branchID, err := handlers.QueryInt64(r, "branchId")
	if err != nil {
		return nil, err
	}
	roomTypeID, err := handlers.QueryInt64(r, "roomTypeId")
	if err != nil {
		return nil, err
	}

	return &roomAvailability.Request{
		StartDate:  start,
		EndDate:    end,
		BranchID:   branchID,
		RoomTypeID: roomTypeID,
	}, nil
}

func (h *Handler) respondUseCaseError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, roomAvailability.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidFilter)

	case errors.Is(err, roomAvailability.ErrRangeTooWide):
		h.logger.Warn("%s - Range too wide: %v", route, err)
		handlers.RespondBadRequest(w, msgRangeTooWide)

	default:
		h.logger.Error("%s - Failed: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
