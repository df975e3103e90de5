package users

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMS-FrontdeskService/internal/api/handlers"
	usersService "github.com/m04kA/HMS-FrontdeskService/internal/service/users"
	"github.com/m04kA/HMS-FrontdeskService/internal/service/users/models"
)

const (
	msgInvalidUserID      = "некорректный ID сотрудника"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidUserData    = "некорректные данные сотрудника"
	msgUserNotFound       = "сотрудник не найден"
	msgEmailTaken         = "сотрудник с таким email уже существует"
	msgInvalidRole        = "некорректная роль сотрудника"
)

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/users
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /users - Failed to list users: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users - Listed %d users", len(result.Users))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleCreate POST /api/v1/users
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usersService.ErrInvalidRole):
			h.logger.Warn("POST /users - Invalid role: role=%s", req.Role)
			handlers.RespondBadRequest(w, msgInvalidRole)

		case errors.Is(err, usersService.ErrInvalidInput):
			h.logger.Warn("POST /users - Invalid user data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidUserData)

		case errors.Is(err, usersService.ErrEmailTaken):
			h.logger.Warn("POST /users - Email taken: email=%s", req.Email)
			handlers.RespondConflict(w, msgEmailTaken)

		default:
			h.logger.Error("POST /users - Failed to create user: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /users - User created: user_id=%d role=%s", result.ID, result.Role)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleGet GET /api/v1/users/{userId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, err := handlers.ParseID(mux.Vars(r)["userId"])
	if err != nil {
		h.logger.Warn("GET /users/{id} - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	result, err := h.service.GetByID(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, usersService.ErrUserNotFound):
			h.logger.Warn("GET /users/{id} - Not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)
		default:
			h.logger.Error("GET /users/{id} - Failed: user_id=%d error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdate PUT /api/v1/users/{userId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, err := handlers.ParseID(mux.Vars(r)["userId"])
	if err != nil {
		h.logger.Warn("PUT /users/{id} - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	var req models.UpdateUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /users/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usersService.ErrInvalidRole):
			h.logger.Warn("PUT /users/{id} - Invalid role: user_id=%d role=%s", userID, req.Role)
			handlers.RespondBadRequest(w, msgInvalidRole)

		case errors.Is(err, usersService.ErrInvalidInput):
			h.logger.Warn("PUT /users/{id} - Invalid user data: user_id=%d error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidUserData)

		case errors.Is(err, usersService.ErrUserNotFound):
			h.logger.Warn("PUT /users/{id} - Not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, usersService.ErrEmailTaken):
			h.logger.Warn("PUT /users/{id} - Email taken: user_id=%d email=%s", userID, req.Email)
			handlers.RespondConflict(w, msgEmailTaken)

		default:
			h.logger.Error("PUT /users/{id} - Failed: user_id=%d error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /users/{id} - User updated: user_id=%d", userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDeactivate PATCH /api/v1/users/{userId}/deactivate
func (h *Handler) HandleDeactivate(w http.ResponseWriter, r *http.Request) {
	h.deactivate(w, r, "PATCH /users/{id}/deactivate")
}

// HandleDelete DELETE /api/v1/users/{userId}
// Удаление сотрудника - это деактивация: учетная запись сохраняется
// в истории, но вход и назначение задач для нее закрыты
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	h.deactivate(w, r, "DELETE /users/{id}")
}

func (h *Handler) deactivate(w http.ResponseWriter, r *http.Request, route string) {
	userID, err := handlers.ParseID(mux.Vars(r)["userId"])
	if err != nil {
		h.logger.Warn("%s - Invalid user ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	if err := h.service.Deactivate(r.Context(), userID); err != nil {
		switch {
		case errors.Is(err, usersService.ErrUserNotFound):
			h.logger.Warn("%s - Not found: user_id=%d", route, userID)
			handlers.RespondNotFound(w, msgUserNotFound)
		default:
			h.logger.Error("%s - Failed: user_id=%d error=%v", route, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - User deactivated: user_id=%d", route, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
