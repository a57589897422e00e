package room

import (
	"net/http"

	"github.com/nekogravitycat/meeting-room-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound    = apperror.New(http.StatusNotFound, "room not found")
	ErrInvalidName = apperror.New(http.StatusBadRequest, "room name must be 1-100 characters")
)

// Room is a bookable meeting room. Rooms are seeded once at startup and are
// read-only afterwards.
type Room struct {
	ID   int64
	Name string
}

// DefaultRooms is the fixed seed used when no explicit room list is configured.
var DefaultRooms = []Room{
	{ID: 1, Name: "Conference Room A"},
	{ID: 2, Name: "Conference Room B"},
	{ID: 3, Name: "Meeting Room C"},
	{ID: 4, Name: "Board Room"},
	{ID: 5, Name: "Training Room"},
}
