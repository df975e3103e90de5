package list_rooms

import (
	"errors"
	"net/http"

	"github.com/m04kA/HMS-FrontdeskService/internal/api/handlers"
	"github.com/m04kA/HMS-FrontdeskService/internal/service/rooms"
	"github.com/m04kA/HMS-FrontdeskService/internal/service/rooms/models"
)

const (
	msgInvalidFilter = "некорректные параметры фильтрации"
)

type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	branchID, err := handlers.QueryInt64(r, "branchId")
	if err != nil {
		h.logger.Warn("GET /rooms - Invalid filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}
	roomTypeID, err := handlers.QueryInt64(r, "roomTypeId")
	if err != nil {
		h.logger.Warn("GET /rooms - Invalid filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	page, limit := handlers.QueryPage(r)
	req := &models.ListRoomsRequest{
		BranchID:   branchID,
		RoomTypeID: roomTypeID,
		Status:     handlers.QueryString(r, "status"),
		Page:       page,
		Limit:      limit,
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrInvalidStatus), errors.Is(err, rooms.ErrInvalidInput):
			h.logger.Warn("GET /rooms - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
		default:
			h.logger.Error("GET /rooms - Failed to list rooms: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms - Listed %d rooms", len(result.Rooms))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleTypes GET /api/v1/room-types
func (h *Handler) HandleTypes(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListTypes(r.Context())
	if err != nil {
		h.logger.Error("GET /room-types - Failed to list room types: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /room-types - Listed %d room types", len(result.RoomTypes))
	handlers.RespondJSON(w, http.StatusOK, result)
}
