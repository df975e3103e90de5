package models

import (
	"time"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
)

// Request модели

// CreateUserRequest запрос на создание сотрудника
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

// UpdateUserRequest запрос на обновление сотрудника
type UpdateUserRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Role     string  `json:"role"`
	Password *string `json:"password,omitempty"` // При nil пароль не меняется
	IsActive bool    `json:"isActive"`
}

// LoginRequest запрос на вход
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Response модели

// UserResponse ответ с данными сотрудника (без хеша пароля)
type UserResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	IsActive bool   `json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserListResponse ответ со списком сотрудников
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

// LoginResponse ответ на успешный вход
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// Методы конвертации

// FromDomainUser конвертирует domain модель в DTO
func FromDomainUser(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}

	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// FromDomainUserList конвертирует список domain моделей в DTO
func FromDomainUserList(users []*domain.User) *UserListResponse {
	resp := &UserListResponse{
		Users: make([]UserResponse, 0, len(users)),
	}

	for _, u := range users {
		if userResp := FromDomainUser(u); userResp != nil {
			resp.Users = append(resp.Users, *userResp)
		}
	}

	return resp
}
