package assign_room

import (
	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
)

// Request запрос на назначение номера бронированию
type Request struct {
	BookingID int64
	RoomID    int64
}

// ConflictInfo пересечение дат с другим бронированием
type ConflictInfo struct {
	BookingID     int64  `json:"bookingId"`
	ReferenceCode string `json:"referenceCode"`
	GuestName     string `json:"guestName"`
	CheckInDate   string `json:"checkInDate"`
	CheckOutDate  string `json:"checkOutDate"`
	Status        string `json:"status"`
}

// UpgradeSuggestion вариант повышения категории
type UpgradeSuggestion struct {
	RoomTypeID     int64  `json:"roomTypeId"`
	RoomTypeName   string `json:"roomTypeName"`
	DailyRate      string `json:"dailyRate"`
	Capacity       int    `json:"capacity"`
	AvailableRooms int    `json:"availableRooms"`
}

// Response итог назначения номера
// Назначение выполняется и при наличии конфликтов: решение остается
// за оператором, конфликты возвращаются как предупреждение
type Response struct {
	BookingID  int64  `json:"bookingId"`
	RoomID     int64  `json:"roomId"`
	RoomNumber string `json:"roomNumber"`

	Conflicts []ConflictInfo      `json:"conflicts"`
	Upgrades  []UpgradeSuggestion `json:"upgrades"`
}

// CheckResponse результат предварительной проверки номера без назначения
type CheckResponse struct {
	RoomID    int64               `json:"roomId"`
	Conflicts []ConflictInfo      `json:"conflicts"`
	Upgrades  []UpgradeSuggestion `json:"upgrades"`
}

func toConflictInfos(conflicts []domain.RoomConflict) []ConflictInfo {
	infos := make([]ConflictInfo, 0, len(conflicts))
	for _, c := range conflicts {
		infos = append(infos, ConflictInfo{
			BookingID:     c.BookingID,
			ReferenceCode: c.ReferenceCode,
			GuestName:     c.GuestName,
			CheckInDate:   c.CheckInDate.Format(domain.DateFormat),
			CheckOutDate:  c.CheckOutDate.Format(domain.DateFormat),
			Status:        string(c.Status),
		})
	}
	return infos
}
