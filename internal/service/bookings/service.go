package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
	bookingRepo "github.com/m04kA/HMS-FrontdeskService/internal/infra/storage/booking"
	guestRepo "github.com/m04kA/HMS-FrontdeskService/internal/infra/storage/guest"
	"github.com/m04kA/HMS-FrontdeskService/internal/service/bookings/models"
	"github.com/m04kA/HMS-FrontdeskService/pkg/csvutil"
)

// exportHeaders заголовки CSV выгрузки бронирований
var exportHeaders = []string{
	"Reference",
	"Guest",
	"Customer",
	"Room",
	"Check-in",
	"Check-out",
	"Status",
	"Total",
	"Balance due",
}

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	guestRepo   GuestRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	guestRepo GuestRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		guestRepo:   guestRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List получает страницу бронирований с фильтрацией
// Статус, даты, филиал и категория уходят в SQL; текстовый поиск
// сужает уже загруженную страницу
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings page=%d limit=%d", req.Page, req.Limit)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, total, err := s.bookingRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	if req.Search != nil && strings.TrimSpace(*req.Search) != "" {
		bookings = narrowBySearch(bookings, *req.Search)
	}

	s.logger.Info("List: fetched %d bookings (total=%d)", len(bookings), total)
	return models.FromDomainBookingList(bookings, filter.Page, filter.Limit, total), nil
}

// Create создает бронирование напрямую, минуя заявку
func (s *Service) Create(ctx context.Context, req *models.CreateBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Create: creating booking ref=%s guest=%d", req.ReferenceCode, req.GuestID)

	booking, err := req.ToDomainBooking()
	if err != nil {
		s.logger.Warn("Create: invalid request ref=%s: %v", req.ReferenceCode, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// Проверяем, что гость и заказчик существуют
	for _, guestID := range []int64{booking.GuestID, booking.CustomerID} {
		if _, err := s.guestRepo.GetByID(ctx, guestID); err != nil {
			if errors.Is(err, guestRepo.ErrGuestNotFound) {
				s.logger.Warn("Create: guest id=%d not found", guestID)
				return nil, ErrGuestNotFound
			}
			s.logger.Error("Create: guest lookup error for id=%d: %v", guestID, err)
			return nil, fmt.Errorf("%w: Create - guest lookup error: %v", ErrInternal, err)
		}
	}

	created, err := s.bookingRepo.Create(ctx, booking)
	if err != nil {
		s.logger.Error("Create: repository error ref=%s: %v", req.ReferenceCode, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created booking id=%d ref=%s", created.ID, created.ReferenceCode)
	return models.FromDomainBooking(created), nil
}

// UpdateStatus обновляет статус бронирования
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s", id, req.Status)

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, id)
		return ErrInvalidStatus
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: updated booking id=%d to status=%s", id, newStatus)
	return nil
}

// Cancel отменяет бронирование
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.IsActive() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", id, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, id, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: cancelled booking id=%d", id)
	return nil
}

// ExportCSV выгружает бронирования по фильтру в CSV
// Значения с запятыми, кавычками и переводами строк экранируются кодеком
func (s *Service) ExportCSV(ctx context.Context, req *models.ListBookingsRequest) ([]byte, error) {
	s.logger.Info("ExportCSV: exporting bookings")

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ExportCSV: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	// Выгрузка не постраничная: снимаем лимит
	filter.Limit = 0

	bookings, _, err := s.bookingRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ExportCSV: repository error: %v", err)
		return nil, fmt.Errorf("%w: ExportCSV - repository error: %v", ErrInternal, err)
	}

	if req.Search != nil && strings.TrimSpace(*req.Search) != "" {
		bookings = narrowBySearch(bookings, *req.Search)
	}

	rows := make([][]string, 0, len(bookings))
	for _, b := range bookings {
		roomNumber := ""
		if b.RoomNumber != nil {
			roomNumber = *b.RoomNumber
		}
		rows = append(rows, []string{
			b.ReferenceCode,
			b.GuestName,
			b.CustomerName,
			roomNumber,
			b.CheckInDate.Format(domain.DateFormat),
			b.CheckOutDate.Format(domain.DateFormat),
			string(b.Status),
			b.TotalAmount.StringFixed(2),
			b.EffectiveBalanceDue().StringFixed(2),
		})
	}

	data, err := csvutil.Marshal(exportHeaders, rows)
	if err != nil {
		s.logger.Error("ExportCSV: marshal error: %v", err)
		return nil, fmt.Errorf("%w: ExportCSV - marshal error: %v", ErrInternal, err)
	}

	s.logger.Info("ExportCSV: exported %d bookings", len(rows))
	return data, nil
}

// narrowBySearch сужает список по подстроке без учета регистра
// Ищет по имени гостя, заказчика, коду бронирования и номеру комнаты
func narrowBySearch(bookings []*domain.Booking, search string) []*domain.Booking {
	needle := strings.ToLower(strings.TrimSpace(search))

	narrowed := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		haystacks := []string{b.GuestName, b.CustomerName, b.ReferenceCode}
		if b.RoomNumber != nil {
			haystacks = append(haystacks, *b.RoomNumber)
		}

		for _, h := range haystacks {
			if strings.Contains(strings.ToLower(h), needle) {
				narrowed = append(narrowed, b)
				break
			}
		}
	}

	return narrowed
}
