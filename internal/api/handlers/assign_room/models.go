package assign_room

// AssignRoomRequest HTTP request model
type AssignRoomRequest struct {
	RoomID int64 `json:"roomId"`
}
