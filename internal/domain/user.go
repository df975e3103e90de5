package domain

import "time"

// UserRole роль сотрудника
type UserRole string

const (
	RoleAdmin        UserRole = "admin"
	RoleManager      UserRole = "manager"
	RoleFrontDesk    UserRole = "front_desk"
	RoleHousekeeping UserRole = "housekeeping"
)

// User сотрудник отеля с доступом к сервису
type User struct {
	ID           int64
	Name         string
	Email        string
	Role         UserRole
	PasswordHash string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanManageUsers returns true for roles allowed to manage staff accounts
func (u *User) CanManageUsers() bool {
	return u.Role == RoleAdmin || u.Role == RoleManager
}

// ValidUserRole проверяет, что роль известна сервису
func ValidUserRole(role UserRole) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleFrontDesk, RoleHousekeeping:
		return true
	default:
		return false
	}
}
