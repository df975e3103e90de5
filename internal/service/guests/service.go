package guests

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
	guestRepo "github.com/m04kA/HMS-FrontdeskService/internal/infra/storage/guest"
	"github.com/m04kA/HMS-FrontdeskService/internal/service/guests/models"
	"github.com/m04kA/HMS-FrontdeskService/pkg/csvutil"
)

// exportHeaders заголовки CSV выгрузки гостей
var exportHeaders = []string{
	"First name",
	"Last name",
	"Email",
	"Phone",
	"Nationality",
	"Document",
}

// Service сервис для работы с гостями
type Service struct {
	guestRepo GuestRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса гостей
func NewService(guestRepo GuestRepository, logger Logger) *Service {
	return &Service{
		guestRepo: guestRepo,
		logger:    logger,
	}
}

// Create создает гостя
func (s *Service) Create(ctx context.Context, req *models.CreateGuestRequest) (*models.GuestResponse, error) {
	s.logger.Info("Create: creating guest %s %s", req.FirstName, req.LastName)

	if strings.TrimSpace(req.FirstName) == "" {
		s.logger.Warn("Create: empty first name")
		return nil, fmt.Errorf("%w: first name is required", ErrInvalidInput)
	}

	created, err := s.guestRepo.Create(ctx, req.ToDomainGuest())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created guest id=%d", created.ID)
	return models.FromDomainGuest(created), nil
}

// GetByID получает гостя по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.GuestResponse, error) {
	s.logger.Info("GetByID: fetching guest id=%d", id)

	g, err := s.guestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, guestRepo.ErrGuestNotFound) {
			s.logger.Warn("GetByID: guest id=%d not found", id)
			return nil, ErrGuestNotFound
		}
		s.logger.Error("GetByID: repository error for guest id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainGuest(g), nil
}

// List получает страницу гостей
// Текстовый поиск сужает уже загруженную страницу
func (s *Service) List(ctx context.Context, req *models.ListGuestsRequest) (*models.GuestListResponse, error) {
	s.logger.Info("List: fetching guests page=%d limit=%d", req.Page, req.Limit)

	filter := req.ToDomainFilter()

	guests, total, err := s.guestRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	if req.Search != nil && strings.TrimSpace(*req.Search) != "" {
		guests = narrowBySearch(guests, *req.Search)
	}

	s.logger.Info("List: fetched %d guests (total=%d)", len(guests), total)
	return models.FromDomainGuestList(guests, filter.Page, filter.Limit, total), nil
}

// Update обновляет данные гостя
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateGuestRequest) (*models.GuestResponse, error) {
	s.logger.Info("Update: updating guest id=%d", id)

	g := req.ToDomainGuest()
	g.ID = id

	if err := s.guestRepo.Update(ctx, g); err != nil {
		if errors.Is(err, guestRepo.ErrGuestNotFound) {
			s.logger.Warn("Update: guest id=%d not found", id)
			return nil, ErrGuestNotFound
		}
		s.logger.Error("Update: repository error for guest id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	updated, err := s.guestRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Update: fetch after update failed for guest id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - fetch after update: %v", ErrInternal, err)
	}

	s.logger.Info("Update: updated guest id=%d", id)
	return models.FromDomainGuest(updated), nil
}

// Delete удаляет гостя
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting guest id=%d", id)

	if err := s.guestRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, guestRepo.ErrGuestNotFound) {
			s.logger.Warn("Delete: guest id=%d not found", id)
			return ErrGuestNotFound
		}
		s.logger.Error("Delete: repository error for guest id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: deleted guest id=%d", id)
	return nil
}

// ExportCSV выгружает гостей в CSV
func (s *Service) ExportCSV(ctx context.Context, req *models.ListGuestsRequest) ([]byte, error) {
	s.logger.Info("ExportCSV: exporting guests")

	filter := req.ToDomainFilter()
	// Выгрузка не постраничная: снимаем лимит
	filter.Limit = 0

	guests, _, err := s.guestRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ExportCSV: repository error: %v", err)
		return nil, fmt.Errorf("%w: ExportCSV - repository error: %v", ErrInternal, err)
	}

	if req.Search != nil && strings.TrimSpace(*req.Search) != "" {
		guests = narrowBySearch(guests, *req.Search)
	}

	rows := make([][]string, 0, len(guests))
	for _, g := range guests {
		rows = append(rows, []string{
			g.FirstName,
			g.LastName,
			deref(g.Email),
			deref(g.Phone),
			deref(g.Nationality),
			deref(g.DocumentNumber),
		})
	}

	data, err := csvutil.Marshal(exportHeaders, rows)
	if err != nil {
		s.logger.Error("ExportCSV: marshal error: %v", err)
		return nil, fmt.Errorf("%w: ExportCSV - marshal error: %v", ErrInternal, err)
	}

	s.logger.Info("ExportCSV: exported %d guests", len(rows))
	return data, nil
}

// narrowBySearch сужает список по подстроке без учета регистра
// Ищет по имени, email и номеру документа
func narrowBySearch(guests []*domain.Guest, search string) []*domain.Guest {
	needle := strings.ToLower(strings.TrimSpace(search))

	narrowed := make([]*domain.Guest, 0, len(guests))
	for _, g := range guests {
		haystacks := []string{g.FullName()}
		if g.Email != nil {
			haystacks = append(haystacks, *g.Email)
		}
		if g.DocumentNumber != nil {
			haystacks = append(haystacks, *g.DocumentNumber)
		}

		for _, h := range haystacks {
			if strings.Contains(strings.ToLower(h), needle) {
				narrowed = append(narrowed, g)
				break
			}
		}
	}

	return narrowed
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
