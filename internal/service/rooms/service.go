package rooms

import (
	"context"
	"errors"
	"fmt"

	roomRepo "github.com/m04kA/HMS-FrontdeskService/internal/infra/storage/room"
	"github.com/m04kA/HMS-FrontdeskService/internal/service/rooms/models"
)

// Service сервис для работы с номерным фондом
type Service struct {
	roomRepo RoomRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса номеров
func NewService(roomRepo RoomRepository, logger Logger) *Service {
	return &Service{
		roomRepo: roomRepo,
		logger:   logger,
	}
}

// GetByID получает номер по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.RoomResponse, error) {
	s.logger.Info("GetByID: fetching room id=%d", id)

	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("GetByID: room id=%d not found", id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetByID: repository error for room id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRoom(room), nil
}

// List получает страницу номеров с фильтрацией
func (s *Service) List(ctx context.Context, req *models.ListRoomsRequest) (*models.RoomListResponse, error) {
	s.logger.Info("List: fetching rooms page=%d limit=%d", req.Page, req.Limit)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	rooms, total, err := s.roomRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d rooms (total=%d)", len(rooms), total)
	return models.FromDomainRoomList(rooms, filter.Page, filter.Limit, total), nil
}

// UpdateStatus обновляет статус номера
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateRoomStatusRequest) error {
	s.logger.Info("UpdateStatus: updating room id=%d to status=%s", id, req.Status)

	status, err := models.ToDomainRoomStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for room id=%d", req.Status, id)
		return ErrInvalidStatus
	}

	if err := s.roomRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("UpdateStatus: room id=%d not found", id)
			return ErrRoomNotFound
		}
		s.logger.Error("UpdateStatus: repository error for room id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: updated room id=%d to status=%s", id, status)
	return nil
}

// ListTypes получает все категории номеров
func (s *Service) ListTypes(ctx context.Context) (*models.RoomTypeListResponse, error) {
	s.logger.Info("ListTypes: fetching room types")

	types, err := s.roomRepo.ListTypes(ctx)
	if err != nil {
		s.logger.Error("ListTypes: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListTypes - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRoomTypeList(types), nil
}
