package update_room_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMS-FrontdeskService/internal/api/handlers"
	"github.com/m04kA/HMS-FrontdeskService/internal/service/rooms"
	"github.com/m04kA/HMS-FrontdeskService/internal/service/rooms/models"
)

const (
	msgInvalidRoomID      = "некорректный ID номера"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStatus      = "некорректный статус номера"
	msgNotFound           = "номер не найден"
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

// Handle PATCH /api/v1/rooms/{roomId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := handlers.ParseID(mux.Vars(r)["roomId"])
	if err != nil {
		h.logger.Warn("PATCH /rooms/{id}/status - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	var req models.UpdateRoomStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /rooms/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.UpdateStatus(r.Context(), roomID, &req); err != nil {
		switch {
		case errors.Is(err, rooms.ErrInvalidStatus):
			h.logger.Warn("PATCH /rooms/{id}/status - Invalid status=%s: room_id=%d", req.Status, roomID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, rooms.ErrRoomNotFound):
			h.logger.Warn("PATCH /rooms/{id}/status - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /rooms/{id}/status - Failed to update status: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /rooms/{id}/status - Status updated: room_id=%d status=%s", roomID, req.Status)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
