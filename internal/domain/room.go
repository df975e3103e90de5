package domain

import "github.com/shopspring/decimal"

// RoomStatus represents the operational status of a room
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
	RoomReserved    RoomStatus = "reserved"
)

// Room represents a physical hotel room
type Room struct {
	ID         int64
	Number     string
	RoomTypeID int64
	BranchID   int64
	Floor      int
	Status     RoomStatus
	DailyRate  decimal.Decimal
	Capacity   int

	// Denormalized for list rendering
	RoomTypeName string
}

// IsBookable returns true if the room can take a new assignment
func (r *Room) IsBookable() bool {
	return r.Status == RoomAvailable
}

// RoomType категория номера с базовым тарифом
type RoomType struct {
	ID        int64
	Name      string
	DailyRate decimal.Decimal
	Capacity  int
}

// IsUpgradeFor returns true if this type is an upgrade for the given
// type and fits the party: more expensive and enough capacity
func (t *RoomType) IsUpgradeFor(current *RoomType, partySize int) bool {
	return t.DailyRate.GreaterThan(current.DailyRate) && t.Capacity >= partySize
}

// RoomsFilter фильтр для списка номеров
type RoomsFilter struct {
	BranchID   *int64
	RoomTypeID *int64
	Status     *RoomStatus
	Page       int64
	Limit      int64
}
