package login

import (
	"errors"
	"net/http"

	"github.com/m04kA/HMS-FrontdeskService/internal/api/handlers"
	"github.com/m04kA/HMS-FrontdeskService/internal/service/users"
	"github.com/m04kA/HMS-FrontdeskService/internal/service/users/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCredentials = "неверный email или пароль"
	msgUserInactive       = "учетная запись деактивирована"
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

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrInvalidCredentials):
			h.logger.Warn("POST /auth/login - Invalid credentials: email=%s", req.Email)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		case errors.Is(err, users.ErrUserInactive):
			h.logger.Warn("POST /auth/login - Inactive account: email=%s", req.Email)
			handlers.RespondForbidden(w, msgUserInactive)

		default:
			h.logger.Error("POST /auth/login - Failed: email=%s error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/login - User logged in: user_id=%d role=%s", result.User.ID, result.User.Role)
	handlers.RespondJSON(w, http.StatusOK, result)
}
