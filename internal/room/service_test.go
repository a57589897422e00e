package room

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	svc := NewService(NewMemoryRepository())
	require.NoError(t, svc.Seed(context.Background(), DefaultRooms))
	return svc
}

func TestGetByID(t *testing.T) {
	svc := newTestService(t)

	rm, err := svc.GetByID(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, "Board Room", rm.Name)
}

func TestGetByIDNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListOrderedByID(t *testing.T) {
	svc := newTestService(t)

	rooms, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rooms, len(DefaultRooms))

	for i, rm := range rooms {
		assert.Equal(t, DefaultRooms[i].ID, rm.ID)
		assert.Equal(t, DefaultRooms[i].Name, rm.Name)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	require.NoError(t, svc.Seed(ctx, DefaultRooms))
	require.NoError(t, svc.Seed(ctx, DefaultRooms))

	rooms, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, rooms, len(DefaultRooms))
}

func TestSeedRejectsInvalidName(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	err := svc.Seed(ctx, []Room{{ID: 1, Name: "   "}})
	assert.ErrorIs(t, err, ErrInvalidName)

	long := make([]byte, 101)
	for i := range long {
		long[i] = 'x'
	}
	err = svc.Seed(ctx, []Room{{ID: 1, Name: string(long)}})
	assert.ErrorIs(t, err, ErrInvalidName)
}
