package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nekogravitycat/meeting-room-booking-backend/internal/api"
	"github.com/nekogravitycat/meeting-room-booking-backend/internal/booking"
	"github.com/nekogravitycat/meeting-room-booking-backend/internal/room"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool // nil selects the in-memory store
	Rooms        []room.Room   // nil selects room.DefaultRooms
	Logger       *slog.Logger
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router         *gin.Engine
	RoomService    room.Service
	BookingService booking.Service
}

// NewContainer initializes all modules, seeds the room directory and returns
// the container.
func NewContainer(ctx context.Context, cfg Config) (*Container, error) {
	var roomRepo room.Repository
	var bookingRepo booking.Repository

	if cfg.DBPool != nil {
		roomRepo = room.NewPgxRepository(cfg.DBPool)
		bookingRepo = booking.NewPgxRepository(cfg.DBPool)
	} else {
		roomRepo = room.NewMemoryRepository()
		bookingRepo = booking.NewMemoryRepository()
	}

	// Room Module
	roomService := room.NewService(roomRepo)

	seed := cfg.Rooms
	if seed == nil {
		seed = room.DefaultRooms
	}
	if err := roomService.Seed(ctx, seed); err != nil {
		return nil, fmt.Errorf("failed to seed rooms: %w", err)
	}

	// Booking Module
	bookingService := booking.NewService(bookingRepo, roomService)

	// Router
	router := api.NewRouter(api.Config{
		IsProduction:   cfg.IsProduction,
		ProdOrigins:    cfg.ProdOrigins,
		Logger:         cfg.Logger,
		RoomService:    roomService,
		BookingService: bookingService,
	})

	return &Container{
		Router:         router,
		RoomService:    roomService,
		BookingService: bookingService,
	}, nil
}
