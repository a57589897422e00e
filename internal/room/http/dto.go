package http

import (
	"github.com/nekogravitycat/meeting-room-booking-backend/internal/room"
)

type RoomResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func NewRoomResponse(rm *room.Room) RoomResponse {
	return RoomResponse{
		ID:   rm.ID,
		Name: rm.Name,
	}
}
