package room_availability

import "time"

// Request запрос на матрицу занятости номеров
type Request struct {
	StartDate  time.Time
	EndDate    time.Time
	BranchID   *int64
	RoomTypeID *int64
}

// CellState состояние ячейки матрицы на день
type CellState string

const (
	CellFree        CellState = "free"
	CellBooked      CellState = "booked"
	CellOccupied    CellState = "occupied"
	CellMaintenance CellState = "maintenance"
)

// DayCell ячейка матрицы: один номер в один день
type DayCell struct {
	Date          string    `json:"date"`
	State         CellState `json:"state"`
	BookingID     *int64    `json:"bookingId,omitempty"`
	ReferenceCode *string   `json:"referenceCode,omitempty"`
	GuestName     *string   `json:"guestName,omitempty"`
}

// RoomRow строка матрицы: номер и его занятость по дням
type RoomRow struct {
	RoomID       int64     `json:"roomId"`
	RoomNumber   string    `json:"roomNumber"`
	RoomTypeName string    `json:"roomTypeName"`
	Floor        int       `json:"floor"`
	Days         []DayCell `json:"days"`
}

// Response матрица занятости номеров на период
type Response struct {
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
	Dates     []string  `json:"dates"`
	Rooms     []RoomRow `json:"rooms"`
}
