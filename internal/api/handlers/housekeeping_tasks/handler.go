package housekeeping_tasks

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMS-FrontdeskService/internal/api/handlers"
	"github.com/m04kA/HMS-FrontdeskService/internal/service/housekeeping"
	"github.com/m04kA/HMS-FrontdeskService/internal/service/housekeeping/models"
)

const (
	msgInvalidTaskID      = "некорректный ID задачи"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTaskData    = "некорректные данные задачи"
	msgInvalidFilter      = "некорректные параметры фильтрации"
	msgInvalidStatus      = "некорректный статус задачи"
	msgTaskNotFound       = "задача не найдена"
	msgRoomNotFound       = "номер не найден"
)

type Handler struct {
	service HousekeepingService
	logger  Logger
}

func NewHandler(service HousekeepingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/housekeeping/tasks
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	roomID, err := handlers.QueryInt64(r, "roomId")
	if err != nil {
		h.logger.Warn("GET /housekeeping/tasks - Invalid filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}
	assignedTo, err := handlers.QueryInt64(r, "assignedTo")
	if err != nil {
		h.logger.Warn("GET /housekeeping/tasks - Invalid filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	page, limit := handlers.QueryPage(r)
	req := &models.ListTasksRequest{
		RoomID:     roomID,
		Status:     handlers.QueryString(r, "status"),
		AssignedTo: assignedTo,
		Page:       page,
		Limit:      limit,
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, housekeeping.ErrInvalidStatus):
			h.logger.Warn("GET /housekeeping/tasks - Invalid status filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, housekeeping.ErrInvalidInput):
			h.logger.Warn("GET /housekeeping/tasks - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /housekeeping/tasks - Failed to list tasks: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /housekeeping/tasks - Listed %d tasks", len(result.Tasks))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleCreate POST /api/v1/housekeeping/tasks
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTaskRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /housekeeping/tasks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, housekeeping.ErrInvalidInput):
			h.logger.Warn("POST /housekeeping/tasks - Invalid task data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTaskData)

		case errors.Is(err, housekeeping.ErrRoomNotFound):
			h.logger.Warn("POST /housekeeping/tasks - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		default:
			h.logger.Error("POST /housekeeping/tasks - Failed to create task: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /housekeeping/tasks - Task created: task_id=%d room_id=%d type=%s",
		result.ID, result.RoomID, result.TaskType)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleUpdateStatus PATCH /api/v1/housekeeping/tasks/{taskId}/status
func (h *Handler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	taskID, err := handlers.ParseID(mux.Vars(r)["taskId"])
	if err != nil {
		h.logger.Warn("PATCH /housekeeping/tasks/{id}/status - Invalid task ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTaskID)
		return
	}

	var req models.UpdateTaskStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /housekeeping/tasks/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.UpdateStatus(r.Context(), taskID, &req); err != nil {
		switch {
		case errors.Is(err, housekeeping.ErrInvalidStatus):
			h.logger.Warn("PATCH /housekeeping/tasks/{id}/status - Invalid status: task_id=%d status=%s", taskID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, housekeeping.ErrTaskNotFound):
			h.logger.Warn("PATCH /housekeeping/tasks/{id}/status - Not found: task_id=%d", taskID)
			handlers.RespondNotFound(w, msgTaskNotFound)

		default:
			h.logger.Error("PATCH /housekeeping/tasks/{id}/status - Failed: task_id=%d error=%v", taskID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /housekeeping/tasks/{id}/status - Status updated: task_id=%d status=%s", taskID, req.Status)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
