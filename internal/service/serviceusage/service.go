package serviceusage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
	bookingRepo "github.com/m04kA/HMS-FrontdeskService/internal/infra/storage/booking"
	"github.com/m04kA/HMS-FrontdeskService/internal/service/serviceusage/models"
)

// TimeProvider абстракция времени для тестов
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider системное время
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Service сервис для работы с оказанными услугами
type Service struct {
	usageRepo   UsageRepository
	bookingRepo BookingRepository
	timeNow     TimeProvider
	logger      Logger
}

// NewService создает новый экземпляр сервиса услуг
func NewService(
	usageRepo UsageRepository,
	bookingRepo BookingRepository,
	timeNow TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		usageRepo:   usageRepo,
		bookingRepo: bookingRepo,
		timeNow:     timeNow,
		logger:      logger,
	}
}

// Create начисляет услугу на бронирование
// Услуги начисляются только на активные бронирования
func (s *Service) Create(ctx context.Context, req *models.CreateUsageRequest) (*models.UsageResponse, error) {
	s.logger.Info("Create: charging service %q to booking=%d", req.ServiceName, req.BookingID)

	if strings.TrimSpace(req.ServiceName) == "" {
		s.logger.Warn("Create: empty service name for booking=%d", req.BookingID)
		return nil, fmt.Errorf("%w: service name is required", ErrInvalidInput)
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || amount.IsNegative() {
		s.logger.Warn("Create: invalid amount=%q for booking=%d", req.Amount, req.BookingID)
		return nil, fmt.Errorf("%w: invalid amount", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Create: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Create: booking lookup error for id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: Create - booking lookup error: %v", ErrInternal, err)
	}

	if !booking.IsActive() {
		s.logger.Warn("Create: booking id=%d is not active, status=%s", booking.ID, booking.Status)
		return nil, ErrBookingNotActive
	}

	usedAt := s.timeNow.Now()
	if req.UsedAt != "" {
		parsed, err := time.Parse(time.RFC3339, req.UsedAt)
		if err != nil {
			s.logger.Warn("Create: invalid used_at=%q for booking=%d", req.UsedAt, req.BookingID)
			return nil, fmt.Errorf("%w: invalid usedAt", ErrInvalidInput)
		}
		usedAt = parsed
	}

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	usage := &domain.ServiceUsage{
		BookingID:   booking.ID,
		ServiceName: req.ServiceName,
		Department:  req.Department,
		Quantity:    quantity,
		Amount:      amount,
		UsedAt:      usedAt,
	}

	created, err := s.usageRepo.Create(ctx, usage)
	if err != nil {
		s.logger.Error("Create: repository error for booking=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: charged service id=%d to booking=%d", created.ID, booking.ID)
	return models.FromDomainUsage(created), nil
}

// ListByBooking получает все услуги бронирования
func (s *Service) ListByBooking(ctx context.Context, bookingID int64) (*models.UsageListResponse, error) {
	s.logger.Info("ListByBooking: fetching usages for booking=%d", bookingID)

	usages, err := s.usageRepo.ListByBooking(ctx, bookingID)
	if err != nil {
		s.logger.Error("ListByBooking: repository error for booking=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: ListByBooking - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainUsageList(usages, 1, int64(len(usages)), int64(len(usages))), nil
}

// List получает страницу услуг с фильтрацией
func (s *Service) List(ctx context.Context, req *models.ListUsageRequest) (*models.UsageListResponse, error) {
	s.logger.Info("List: fetching usages page=%d limit=%d", req.Page, req.Limit)

	filter := req.ToDomainFilter()

	usages, total, err := s.usageRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d usages (total=%d)", len(usages), total)
	return models.FromDomainUsageList(usages, filter.Page, filter.Limit, total), nil
}
