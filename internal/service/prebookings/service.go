package prebookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
	guestRepo "github.com/m04kA/HMS-FrontdeskService/internal/infra/storage/guest"
	preBookingRepo "github.com/m04kA/HMS-FrontdeskService/internal/infra/storage/prebooking"
	"github.com/m04kA/HMS-FrontdeskService/internal/service/prebookings/models"
)

// Service сервис для работы с заявками на бронирование
type Service struct {
	preBookingRepo PreBookingRepository
	guestRepo      GuestRepository
	logger         Logger
}

// NewService создает новый экземпляр сервиса заявок
func NewService(
	preBookingRepo PreBookingRepository,
	guestRepo GuestRepository,
	logger Logger,
) *Service {
	return &Service{
		preBookingRepo: preBookingRepo,
		guestRepo:      guestRepo,
		logger:         logger,
	}
}

// Create создает заявку
func (s *Service) Create(ctx context.Context, req *models.CreatePreBookingRequest) (*models.PreBookingResponse, error) {
	s.logger.Info("Create: creating pre-booking ref=%s guest=%d", req.ReferenceCode, req.GuestID)

	preBooking, err := req.ToDomainPreBooking()
	if err != nil {
		s.logger.Warn("Create: invalid request ref=%s: %v", req.ReferenceCode, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if !preBooking.CheckInDate.Before(preBooking.CheckOutDate) {
		s.logger.Warn("Create: check-out is not after check-in ref=%s", req.ReferenceCode)
		return nil, fmt.Errorf("%w: check-out date must be after check-in date", ErrInvalidInput)
	}

	// Проверяем, что гость и заказчик существуют
	for _, guestID := range []int64{preBooking.GuestID, preBooking.CustomerID} {
		if _, err := s.guestRepo.GetByID(ctx, guestID); err != nil {
			if errors.Is(err, guestRepo.ErrGuestNotFound) {
				s.logger.Warn("Create: guest id=%d not found", guestID)
				return nil, ErrGuestNotFound
			}
			s.logger.Error("Create: guest lookup error for id=%d: %v", guestID, err)
			return nil, fmt.Errorf("%w: Create - guest lookup error: %v", ErrInternal, err)
		}
	}

	created, err := s.preBookingRepo.Create(ctx, preBooking)
	if err != nil {
		s.logger.Error("Create: repository error ref=%s: %v", req.ReferenceCode, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created pre-booking id=%d ref=%s", created.ID, created.ReferenceCode)
	return models.FromDomainPreBooking(created), nil
}

// GetByID получает заявку по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.PreBookingResponse, error) {
	s.logger.Info("GetByID: fetching pre-booking id=%d", id)

	p, err := s.preBookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, preBookingRepo.ErrPreBookingNotFound) {
			s.logger.Warn("GetByID: pre-booking id=%d not found", id)
			return nil, ErrPreBookingNotFound
		}
		s.logger.Error("GetByID: repository error for pre-booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPreBooking(p), nil
}

// List получает страницу заявок с фильтрацией
// Текстовый поиск сужает уже загруженную страницу
func (s *Service) List(ctx context.Context, req *models.ListPreBookingsRequest) (*models.PreBookingListResponse, error) {
	s.logger.Info("List: fetching pre-bookings page=%d limit=%d", req.Page, req.Limit)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	preBookings, total, err := s.preBookingRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	if req.Search != nil && strings.TrimSpace(*req.Search) != "" {
		preBookings = narrowBySearch(preBookings, *req.Search)
	}

	s.logger.Info("List: fetched %d pre-bookings (total=%d)", len(preBookings), total)
	return models.FromDomainPreBookingList(preBookings, filter.Page, filter.Limit, total), nil
}

// Cancel отменяет заявку
func (s *Service) Cancel(ctx context.Context, id int64) error {
	s.logger.Info("Cancel: cancelling pre-booking id=%d", id)

	if err := s.preBookingRepo.Cancel(ctx, id); err != nil {
		if errors.Is(err, preBookingRepo.ErrAlreadyConverted) {
			s.logger.Warn("Cancel: pre-booking id=%d is not pending", id)
			return ErrAlreadyConverted
		}
		s.logger.Error("Cancel: repository error for pre-booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: cancelled pre-booking id=%d", id)
	return nil
}

// narrowBySearch сужает список по подстроке без учета регистра
// Ищет по имени гостя, заказчика и коду заявки
func narrowBySearch(preBookings []*domain.PreBooking, search string) []*domain.PreBooking {
	needle := strings.ToLower(strings.TrimSpace(search))

	narrowed := make([]*domain.PreBooking, 0, len(preBookings))
	for _, p := range preBookings {
		haystacks := []string{p.GuestName, p.CustomerName, p.ReferenceCode}

		for _, h := range haystacks {
			if strings.Contains(strings.ToLower(h), needle) {
				narrowed = append(narrowed, p)
				break
			}
		}
	}

	return narrowed
}
