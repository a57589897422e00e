package booking

import (
	"context"
	"errors"
	"time"

	"github.com/nekogravitycat/meeting-room-booking-backend/internal/room"
)

type CreateRequest struct {
	RoomID    int64
	StartTime time.Time
	EndTime   time.Time
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)

	// Cancel hard-deletes the booking. It reports false when no booking with
	// the id exists; a second cancel of the same id reports false.
	Cancel(ctx context.Context, id int64) (bool, error)

	// ListByRoom returns the room's bookings ordered by start time ascending.
	// An unknown room yields an empty list, not an error.
	ListByRoom(ctx context.Context, roomID int64) ([]*Booking, error)
}

type service struct {
	repo  Repository
	rooms room.Service
}

func NewService(repo Repository, rooms room.Service) Service {
	return &service{repo: repo, rooms: rooms}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	// 1. Validate time range
	if !req.StartTime.Before(req.EndTime) {
		return nil, ErrInvalidTimeRange
	}
	// 2. Start time cannot be in the past
	if req.StartTime.Before(time.Now().UTC()) {
		return nil, ErrStartTimePast
	}

	// 3. Validate room exists
	rm, err := s.rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, room.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	// 4. Check overlap and insert; the repository makes this one atomic unit
	b := &Booking{
		RoomID:    req.RoomID,
		StartTime: req.StartTime.UTC(),
		EndTime:   req.EndTime.UTC(),
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	b.RoomName = rm.Name
	return b, nil
}

func (s *service) Cancel(ctx context.Context, id int64) (bool, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *service) ListByRoom(ctx context.Context, roomID int64) ([]*Booking, error) {
	rm, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, room.ErrNotFound) {
			return []*Booking{}, nil
		}
		return nil, err
	}

	bookings, err := s.repo.ListByRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	for _, b := range bookings {
		b.RoomName = rm.Name
	}
	return bookings, nil
}
