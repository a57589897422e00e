package booking

import (
	"context"
	"sort"
	"sync"
)

// memoryRepository keeps bookings in a process-local map guarded by a single
// RWMutex. Create holds the write lock across the overlap scan and the insert,
// so the no-overlap invariant also holds under concurrent callers.
type memoryRepository struct {
	mu       sync.RWMutex
	bookings map[int64]Booking
	nextID   int64
}

func NewMemoryRepository() Repository {
	return &memoryRepository{bookings: make(map[int64]Booking)}
}

func (r *memoryRepository) Create(_ context.Context, b *Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.bookings {
		if existing.RoomID == b.RoomID && existing.Overlaps(b.StartTime, b.EndTime) {
			return ErrTimeConflict
		}
	}

	// Monotonic counter: ids of cancelled bookings are never reused.
	r.nextID++
	b.ID = r.nextID

	stored := *b
	stored.RoomName = ""
	r.bookings[stored.ID] = stored
	return nil
}

func (r *memoryRepository) GetByID(_ context.Context, id int64) (*Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &b, nil
}

func (r *memoryRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bookings[id]; !ok {
		return ErrNotFound
	}
	delete(r.bookings, id)
	return nil
}

func (r *memoryRepository) ListByRoom(_ context.Context, roomID int64) ([]*Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var bookings []*Booking
	for _, b := range r.bookings {
		if b.RoomID == roomID {
			b := b
			bookings = append(bookings, &b)
		}
	}
	sort.Slice(bookings, func(i, j int) bool {
		if bookings[i].StartTime.Equal(bookings[j].StartTime) {
			return bookings[i].ID < bookings[j].ID
		}
		return bookings[i].StartTime.Before(bookings[j].StartTime)
	})
	return bookings, nil
}
