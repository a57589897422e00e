package room

import (
	"context"
	"sort"
	"sync"
)

// memoryRepository keeps the room directory in a process-local map. Rooms are
// only written during Seed, so reads share an RLock.
type memoryRepository struct {
	mu    sync.RWMutex
	rooms map[int64]Room
}

func NewMemoryRepository() Repository {
	return &memoryRepository{rooms: make(map[int64]Room)}
}

func (r *memoryRepository) Seed(_ context.Context, rooms []Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rm := range rooms {
		r.rooms[rm.ID] = rm
	}
	return nil
}

func (r *memoryRepository) GetByID(_ context.Context, id int64) (*Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rm, ok := r.rooms[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &rm, nil
}

func (r *memoryRepository) List(_ context.Context) ([]*Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rooms := make([]*Room, 0, len(r.rooms))
	for _, rm := range r.rooms {
		rm := rm
		rooms = append(rooms, &rm)
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].ID < rooms[j].ID })
	return rooms, nil
}
