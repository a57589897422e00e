package booking

import (
	"net/http"
	"time"

	"github.com/nekogravitycat/meeting-room-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "booking not found")
	ErrTimeConflict     = apperror.New(http.StatusConflict, "time slot already booked")
	ErrInvalidTimeRange = apperror.New(http.StatusBadRequest, "start time must be before end time")
	ErrRoomNotFound     = apperror.New(http.StatusNotFound, "room not found")
	ErrStartTimePast    = apperror.New(http.StatusBadRequest, "cannot create bookings in the past")
)

// Booking is a reservation of one room for a half-open interval
// [StartTime, EndTime). Two bookings ending/starting at the same instant do
// not conflict.
type Booking struct {
	ID        int64
	RoomID    int64
	RoomName  string // resolved at read time, not stored
	StartTime time.Time
	EndTime   time.Time
}

// Overlaps reports whether the booking's interval intersects [start, end)
// under half-open semantics.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.StartTime.Before(end) && b.EndTime.After(start)
}
