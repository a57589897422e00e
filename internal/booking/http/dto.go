package http

import (
	"time"

	"github.com/nekogravitycat/meeting-room-booking-backend/internal/booking"
)

type BookingResponse struct {
	ID        int64     `json:"id"`
	RoomID    int64     `json:"room_id"`
	RoomName  string    `json:"room_name"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		RoomID:    b.RoomID,
		RoomName:  b.RoomName,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
	}
}

type CreateBookingBody struct {
	RoomID    int64     `json:"room_id" binding:"required,min=1"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

// Validate performs custom validation for CreateBookingBody.
func (r *CreateBookingBody) Validate() error {
	if !r.StartTime.Before(r.EndTime) {
		return booking.ErrInvalidTimeRange
	}
	return nil
}

// ListBookingsRequest defines query parameters for listing bookings.
type ListBookingsRequest struct {
	RoomID int64 `form:"room_id" binding:"required,min=1"`
}
