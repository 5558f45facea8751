package handlers

import (
	"context"
	"time"

	"github.com/Immortal-romantic/hotel-booking/internal/database"
	"github.com/Immortal-romantic/hotel-booking/internal/models"
)

// Store — всё, что хендлерам нужно от базы
type Store interface {
	CreateRoom(room *models.Room) error
	GetRoom(id uint) (*models.Room, error)
	ListRooms(sort database.RoomSort, desc bool) ([]models.Room, error)
	DeleteRoom(id uint) error

	CreateBooking(booking *models.Booking) error
	GetBooking(id uint) (*models.Booking, error)
	UpdateBooking(booking *models.Booking) error
	DeleteBooking(id uint) error
	ListBookings(roomID uint) ([]models.Booking, error)
	HasOverlap(roomID uint, start, end time.Time, excludeID uint) (bool, error)

	Ping(ctx context.Context) error
}
