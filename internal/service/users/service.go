package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
	userRepo "github.com/m04kA/HMS-FrontdeskService/internal/infra/storage/user"
	"github.com/m04kA/HMS-FrontdeskService/internal/service/users/models"
)

// minPasswordLength минимальная длина пароля сотрудника
const minPasswordLength = 8

// Service сервис для работы с сотрудниками и аутентификацией
type Service struct {
	userRepo    UserRepository
	tokenIssuer TokenIssuer
	logger      Logger
}

// NewService создает новый экземпляр сервиса сотрудников
func NewService(userRepo UserRepository, tokenIssuer TokenIssuer, logger Logger) *Service {
	return &Service{
		userRepo:    userRepo,
		tokenIssuer: tokenIssuer,
		logger:      logger,
	}
}

// Login проверяет учетные данные и выпускает токен доступа
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	s.logger.Info("Login: attempt for email=%s", req.Email)

	u, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: unknown email=%s", req.Email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if !u.IsActive {
		s.logger.Warn("Login: inactive user id=%d", u.ID)
		return nil, ErrUserInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: wrong password for user id=%d", u.ID)
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokenIssuer.IssueToken(u.ID, u.Email, string(u.Role))
	if err != nil {
		s.logger.Error("Login: token issue failed for user id=%d: %v", u.ID, err)
		return nil, fmt.Errorf("%w: Login - token issue failed: %v", ErrInternal, err)
	}

	s.logger.Info("Login: success for user id=%d role=%s", u.ID, u.Role)
	return &models.LoginResponse{
		Token: token,
		User:  *models.FromDomainUser(u),
	}, nil
}

// Create создает сотрудника
func (s *Service) Create(ctx context.Context, req *models.CreateUserRequest) (*models.UserResponse, error) {
	s.logger.Info("Create: creating user email=%s role=%s", req.Email, req.Role)

	role := domain.UserRole(req.Role)
	if !domain.ValidUserRole(role) {
		s.logger.Warn("Create: invalid role=%s", req.Role)
		return nil, ErrInvalidRole
	}

	if len(req.Password) < minPasswordLength {
		s.logger.Warn("Create: password too short for email=%s", req.Email)
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Create: hash generation failed: %v", err)
		return nil, fmt.Errorf("%w: Create - hash generation failed: %v", ErrInternal, err)
	}

	u := &domain.User{
		Name:         req.Name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Role:         role,
		PasswordHash: string(hash),
		IsActive:     true,
	}

	created, err := s.userRepo.Create(ctx, u)
	if err != nil {
		if errors.Is(err, userRepo.ErrEmailTaken) {
			s.logger.Warn("Create: email=%s already taken", req.Email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("Create: repository error for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created user id=%d", created.ID)
	return models.FromDomainUser(created), nil
}

// GetByID получает сотрудника по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.UserResponse, error) {
	s.logger.Info("GetByID: fetching user id=%d", id)

	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("GetByID: user id=%d not found", id)
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetByID: repository error for user id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainUser(u), nil
}

// List получает всех сотрудников
func (s *Service) List(ctx context.Context) (*models.UserListResponse, error) {
	s.logger.Info("List: fetching users")

	users, err := s.userRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainUserList(users), nil
}

// Update обновляет данные сотрудника
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateUserRequest) (*models.UserResponse, error) {
	s.logger.Info("Update: updating user id=%d", id)

	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Update: user id=%d not found", id)
			return nil, ErrUserNotFound
		}
		s.logger.Error("Update: repository error for user id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	role := domain.UserRole(req.Role)
	if !domain.ValidUserRole(role) {
		s.logger.Warn("Update: invalid role=%s for user id=%d", req.Role, id)
		return nil, ErrInvalidRole
	}

	u.Name = req.Name
	u.Email = strings.ToLower(strings.TrimSpace(req.Email))
	u.Role = role
	u.IsActive = req.IsActive

	if req.Password != nil {
		if len(*req.Password) < minPasswordLength {
			s.logger.Warn("Update: password too short for user id=%d", id)
			return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			s.logger.Error("Update: hash generation failed for user id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: Update - hash generation failed: %v", ErrInternal, err)
		}
		u.PasswordHash = string(hash)
	}

	if err := s.userRepo.Update(ctx, u); err != nil {
		if errors.Is(err, userRepo.ErrEmailTaken) {
			s.logger.Warn("Update: email=%s already taken", req.Email)
			return nil, ErrEmailTaken
		}
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("Update: repository error for user id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: updated user id=%d", id)
	return models.FromDomainUser(u), nil
}

// Deactivate отключает сотрудника
func (s *Service) Deactivate(ctx context.Context, id int64) error {
	s.logger.Info("Deactivate: deactivating user id=%d", id)

	if err := s.userRepo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Deactivate: user id=%d not found", id)
			return ErrUserNotFound
		}
		s.logger.Error("Deactivate: repository error for user id=%d: %v", id, err)
		return fmt.Errorf("%w: Deactivate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Deactivate: deactivated user id=%d", id)
	return nil
}
