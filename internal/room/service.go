package room

import (
	"context"
	"strings"
)

type Service interface {
	GetByID(ctx context.Context, id int64) (*Room, error)
	List(ctx context.Context) ([]*Room, error)

	// Seed loads the fixed room list into the repository. Called once at startup.
	Seed(ctx context.Context, rooms []Room) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Seed(ctx context.Context, rooms []Room) error {
	for _, rm := range rooms {
		name := strings.TrimSpace(rm.Name)
		if name == "" || len(name) > 100 {
			return ErrInvalidName
		}
	}
	return s.repo.Seed(ctx, rooms)
}

func (s *service) GetByID(ctx context.Context, id int64) (*Room, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Room, error) {
	return s.repo.List(ctx)
}
