package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/meeting-room-booking-backend/internal/room"
)

func newTestService(t *testing.T) Service {
	t.Helper()

	roomRepo := room.NewMemoryRepository()
	roomService := room.NewService(roomRepo)
	err := roomService.Seed(context.Background(), []room.Room{
		{ID: 1, Name: "Conference Room A"},
		{ID: 2, Name: "Conference Room B"},
	})
	require.NoError(t, err)

	return NewService(NewMemoryRepository(), roomService)
}

// tomorrowAt returns a time well in the future so past-start validation never
// interferes with interval tests.
func tomorrowAt(hour, min int) time.Time {
	base := time.Now().UTC().Add(24 * time.Hour).Truncate(24 * time.Hour)
	return base.Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute)
}

func TestCreateBooking(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	start := tomorrowAt(10, 0)
	end := tomorrowAt(11, 0)

	b, err := svc.Create(ctx, CreateRequest{RoomID: 1, StartTime: start, EndTime: end})
	require.NoError(t, err)

	assert.NotZero(t, b.ID)
	assert.Equal(t, int64(1), b.RoomID)
	assert.Equal(t, "Conference Room A", b.RoomName)
	assert.True(t, b.StartTime.Equal(start))
	assert.True(t, b.EndTime.Equal(end))
}

func TestCreateBookingInvalidTimeRange(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// End before start
	_, err := svc.Create(ctx, CreateRequest{
		RoomID:    1,
		StartTime: tomorrowAt(12, 0),
		EndTime:   tomorrowAt(11, 0),
	})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	// Zero-length interval
	_, err = svc.Create(ctx, CreateRequest{
		RoomID:    1,
		StartTime: tomorrowAt(11, 0),
		EndTime:   tomorrowAt(11, 0),
	})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestCreateBookingInPast(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(context.Background(), CreateRequest{
		RoomID:    1,
		StartTime: time.Now().UTC().Add(-2 * time.Hour),
		EndTime:   time.Now().UTC().Add(-1 * time.Hour),
	})
	assert.ErrorIs(t, err, ErrStartTimePast)
}

func TestCreateBookingRoomNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(context.Background(), CreateRequest{
		RoomID:    99,
		StartTime: tomorrowAt(10, 0),
		EndTime:   tomorrowAt(11, 0),
	})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestCreateBookingValidationOrder(t *testing.T) {
	svc := newTestService(t)

	// Invalid interval on an unknown room: interval check wins.
	_, err := svc.Create(context.Background(), CreateRequest{
		RoomID:    99,
		StartTime: tomorrowAt(12, 0),
		EndTime:   tomorrowAt(11, 0),
	})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestCreateBookingOverlap(t *testing.T) {
	cases := []struct {
		name           string
		firstStart     time.Time
		firstEnd       time.Time
		secondStart    time.Time
		secondEnd      time.Time
		expectConflict bool
	}{
		{"partial overlap", tomorrowAt(10, 0), tomorrowAt(11, 0), tomorrowAt(10, 30), tomorrowAt(11, 30), true},
		{"contained", tomorrowAt(10, 0), tomorrowAt(12, 0), tomorrowAt(10, 30), tomorrowAt(11, 0), true},
		{"containing", tomorrowAt(10, 30), tomorrowAt(11, 0), tomorrowAt(10, 0), tomorrowAt(12, 0), true},
		{"identical", tomorrowAt(10, 0), tomorrowAt(11, 0), tomorrowAt(10, 0), tomorrowAt(11, 0), true},
		{"touching after", tomorrowAt(10, 0), tomorrowAt(11, 0), tomorrowAt(11, 0), tomorrowAt(12, 0), false},
		{"touching before", tomorrowAt(11, 0), tomorrowAt(12, 0), tomorrowAt(10, 0), tomorrowAt(11, 0), false},
		{"disjoint", tomorrowAt(10, 0), tomorrowAt(11, 0), tomorrowAt(14, 0), tomorrowAt(15, 0), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestService(t)
			ctx := context.Background()

			_, err := svc.Create(ctx, CreateRequest{RoomID: 1, StartTime: tc.firstStart, EndTime: tc.firstEnd})
			require.NoError(t, err)

			_, err = svc.Create(ctx, CreateRequest{RoomID: 1, StartTime: tc.secondStart, EndTime: tc.secondEnd})
			if tc.expectConflict {
				assert.ErrorIs(t, err, ErrTimeConflict)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateBookingOverlapOtherRoom(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateRequest{RoomID: 1, StartTime: tomorrowAt(10, 0), EndTime: tomorrowAt(11, 0)})
	require.NoError(t, err)

	// Same interval in a different room does not conflict.
	_, err = svc.Create(ctx, CreateRequest{RoomID: 2, StartTime: tomorrowAt(10, 0), EndTime: tomorrowAt(11, 0)})
	assert.NoError(t, err)
}

func TestCancelBooking(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// Unknown id
	found, err := svc.Cancel(ctx, 42)
	require.NoError(t, err)
	assert.False(t, found)

	b, err := svc.Create(ctx, CreateRequest{RoomID: 1, StartTime: tomorrowAt(10, 0), EndTime: tomorrowAt(11, 0)})
	require.NoError(t, err)

	found, err = svc.Cancel(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, found)

	// Second cancel of the same id reports not found.
	found, err = svc.Cancel(ctx, b.ID)
	require.NoError(t, err)
	assert.False(t, found)

	bookings, err := svc.ListByRoom(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestCancelFreesSlot(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	b, err := svc.Create(ctx, CreateRequest{RoomID: 1, StartTime: tomorrowAt(10, 0), EndTime: tomorrowAt(11, 0)})
	require.NoError(t, err)

	found, err := svc.Cancel(ctx, b.ID)
	require.NoError(t, err)
	require.True(t, found)

	// The slot is bookable again, and the new booking gets a fresh id.
	b2, err := svc.Create(ctx, CreateRequest{RoomID: 1, StartTime: tomorrowAt(10, 0), EndTime: tomorrowAt(11, 0)})
	require.NoError(t, err)
	assert.NotEqual(t, b.ID, b2.ID)
}

func TestListByRoomOrdering(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// Create out of chronological order.
	_, err := svc.Create(ctx, CreateRequest{RoomID: 1, StartTime: tomorrowAt(14, 0), EndTime: tomorrowAt(15, 0)})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateRequest{RoomID: 1, StartTime: tomorrowAt(9, 0), EndTime: tomorrowAt(10, 0)})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateRequest{RoomID: 1, StartTime: tomorrowAt(11, 0), EndTime: tomorrowAt(12, 0)})
	require.NoError(t, err)

	bookings, err := svc.ListByRoom(ctx, 1)
	require.NoError(t, err)
	require.Len(t, bookings, 3)

	for i := 1; i < len(bookings); i++ {
		assert.False(t, bookings[i].StartTime.Before(bookings[i-1].StartTime),
			"bookings must be ordered by start time ascending")
	}

	// Every item carries the resolved room name.
	for _, b := range bookings {
		assert.Equal(t, "Conference Room A", b.RoomName)
	}
}

func TestListByRoomUnknownRoom(t *testing.T) {
	svc := newTestService(t)

	bookings, err := svc.ListByRoom(context.Background(), 99)
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestBookingLifecycleScenario(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, CreateRequest{RoomID: 1, StartTime: tomorrowAt(10, 0), EndTime: tomorrowAt(11, 0)})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateRequest{RoomID: 1, StartTime: tomorrowAt(10, 30), EndTime: tomorrowAt(11, 30)})
	assert.ErrorIs(t, err, ErrTimeConflict)

	second, err := svc.Create(ctx, CreateRequest{RoomID: 1, StartTime: tomorrowAt(11, 0), EndTime: tomorrowAt(12, 0)})
	require.NoError(t, err, "touching intervals do not conflict")

	_, err = svc.Create(ctx, CreateRequest{RoomID: 3, StartTime: tomorrowAt(9, 0), EndTime: tomorrowAt(10, 0)})
	assert.ErrorIs(t, err, ErrRoomNotFound)

	found, err := svc.Cancel(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = svc.Cancel(ctx, first.ID)
	require.NoError(t, err)
	assert.False(t, found)

	bookings, err := svc.ListByRoom(ctx, 1)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, second.ID, bookings[0].ID)
}

func TestConcurrentCreateSameSlot(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	start := tomorrowAt(14, 0)
	end := tomorrowAt(15, 0)

	const attempts = 16
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.Create(ctx, CreateRequest{RoomID: 1, StartTime: start, EndTime: end})
			errs[i] = err
		}(i)
	}
	wg.Wait()

	var successes, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, ErrTimeConflict):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, successes, "exactly one concurrent create must win")
	assert.Equal(t, attempts-1, conflicts)

	bookings, err := svc.ListByRoom(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, bookings, 1, "no duplicate booking may appear")
}
