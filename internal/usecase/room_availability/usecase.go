package room_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
	"github.com/m04kA/HMS-FrontdeskService/pkg/csvutil"
	"github.com/m04kA/HMS-FrontdeskService/pkg/ptr"
)

// maxRangeDays максимальная длина периода матрицы
const maxRangeDays = 62

// UseCase матрица занятости номеров на период
// Строка - номер, столбец - день; ячейка показывает состояние номера
// и бронирование, занимающее его в этот день
type UseCase struct {
	roomRepo    RoomRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(roomRepo RoomRepository, bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute строит матрицу занятости номеров
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RoomAvailability: start=%s end=%s",
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация периода
	if !req.EndDate.After(req.StartDate) {
		return nil, fmt.Errorf("%w: end date must be after start date", ErrInvalidInput)
	}
	days := int(req.EndDate.Sub(req.StartDate).Hours() / 24)
	if days > maxRangeDays {
		return nil, fmt.Errorf("%w: %d days requested, maximum is %d", ErrRangeTooWide, days, maxRangeDays)
	}

	// 2. Номера без пагинации: матрица всегда показывает весь фонд филиала
	filter := domain.RoomsFilter{
		BranchID:   req.BranchID,
		RoomTypeID: req.RoomTypeID,
	}
	rooms, _, err := uc.roomRepo.ListWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("RoomAvailability: rooms lookup failed: %v", err)
		return nil, fmt.Errorf("%w: rooms lookup failed: %v", ErrInternal, err)
	}

	// 3. Активные бронирования, пересекающие период
	bookings, err := uc.bookingRepo.ListOverlapping(ctx, req.StartDate, req.EndDate, req.BranchID)
	if err != nil {
		uc.logger.Error("RoomAvailability: bookings lookup failed: %v", err)
		return nil, fmt.Errorf("%w: bookings lookup failed: %v", ErrInternal, err)
	}

	byRoom := groupByRoom(bookings)
	dates := buildDates(req.StartDate, days)

	resp := &Response{
		StartDate: req.StartDate.Format(domain.DateFormat),
		EndDate:   req.EndDate.Format(domain.DateFormat),
		Dates:     dates,
		Rooms:     make([]RoomRow, 0, len(rooms)),
	}

	for _, room := range rooms {
		row := RoomRow{
			RoomID:       room.ID,
			RoomNumber:   room.Number,
			RoomTypeName: room.RoomTypeName,
			Floor:        room.Floor,
			Days:         make([]DayCell, 0, len(dates)),
		}

		for i := 0; i < days; i++ {
			day := req.StartDate.AddDate(0, 0, i)
			row.Days = append(row.Days, buildCell(room, byRoom[room.ID], day))
		}

		resp.Rooms = append(resp.Rooms, row)
	}

	uc.logger.Info("RoomAvailability: matrix built, rooms=%d days=%d", len(resp.Rooms), days)
	return resp, nil
}

// exportHeaders фиксированный порядок колонок выгрузки
var exportHeaders = []string{"Room", "Type", "Floor", "Date", "State", "Booking Reference", "Guest"}

// ExportCSV выгружает матрицу занятости построчно: номер x день
func (uc *UseCase) ExportCSV(ctx context.Context, req *Request) ([]byte, error) {
	matrix, err := uc.Execute(ctx, req)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(matrix.Rooms)*len(matrix.Dates))
	for _, room := range matrix.Rooms {
		for _, cell := range room.Days {
			rows = append(rows, []string{
				room.RoomNumber,
				room.RoomTypeName,
				fmt.Sprintf("%d", room.Floor),
				cell.Date,
				string(cell.State),
				derefOrEmpty(cell.ReferenceCode),
				derefOrEmpty(cell.GuestName),
			})
		}
	}

	data, err := csvutil.Marshal(exportHeaders, rows)
	if err != nil {
		uc.logger.Error("RoomAvailability.ExportCSV: marshal failed: %v", err)
		return nil, fmt.Errorf("%w: csv marshal failed: %v", ErrInternal, err)
	}

	uc.logger.Info("RoomAvailability.ExportCSV: exported %d rows", len(rows))
	return data, nil
}

// buildCell определяет состояние номера на конкретный день
// Номер на обслуживании закрыт весь период независимо от бронирований
func buildCell(room *domain.Room, bookings []*domain.Booking, day time.Time) DayCell {
	cell := DayCell{
		Date:  day.Format(domain.DateFormat),
		State: CellFree,
	}

	if room.Status == domain.RoomMaintenance {
		cell.State = CellMaintenance
		return cell
	}

	for _, b := range bookings {
		// День выезда свободен для следующего заезда
		if !domain.DateRangesOverlap(day, day.AddDate(0, 0, 1), b.CheckInDate, b.CheckOutDate) {
			continue
		}

		cell.BookingID = ptr.Ptr(b.ID)
		cell.ReferenceCode = ptr.Ptr(b.ReferenceCode)
		cell.GuestName = ptr.Ptr(b.GuestName)
		if b.Status == domain.StatusCheckedIn {
			cell.State = CellOccupied
		} else {
			cell.State = CellBooked
		}
		return cell
	}

	return cell
}

// groupByRoom раскладывает бронирования по назначенным номерам
// Групповые бронирования без конкретного номера в матрицу не попадают
func groupByRoom(bookings []*domain.Booking) map[int64][]*domain.Booking {
	byRoom := make(map[int64][]*domain.Booking, len(bookings))
	for _, b := range bookings {
		if b.RoomID == nil {
			continue
		}
		byRoom[*b.RoomID] = append(byRoom[*b.RoomID], b)
	}
	return byRoom
}

func buildDates(start time.Time, days int) []string {
	dates := make([]string, 0, days)
	for i := 0; i < days; i++ {
		dates = append(dates, start.AddDate(0, 0, i).Format(domain.DateFormat))
	}
	return dates
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
