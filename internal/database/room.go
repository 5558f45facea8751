package database

import (
	"errors"

	"github.com/Immortal-romantic/hotel-booking/internal/models"
	"gorm.io/gorm"
)

type RoomSort string

const (
	SortByID        RoomSort = "id"
	SortByPrice     RoomSort = "price"
	SortByCreatedAt RoomSort = "created_at"
)

// ParseRoomSort сводит параметр сортировки к фиксированному набору колонок
func ParseRoomSort(s string) (RoomSort, bool) {
	switch s {
	case "", "id":
		return SortByID, true
	case "price":
		return SortByPrice, true
	case "created", "created_at":
		return SortByCreatedAt, true
	}
	return "", false
}

func ParseSortOrder(s string) (desc bool, ok bool) {
	switch s {
	case "", "asc":
		return false, true
	case "desc":
		return true, true
	}
	return false, false
}

func (d *Database) CreateRoom(room *models.Room) error {
	return d.db.Create(room).Error
}

func (d *Database) GetRoom(id uint) (*models.Room, error) {
	var room models.Room
	if err := d.db.First(&room, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

func (d *Database) ListRooms(sort RoomSort, desc bool) ([]models.Room, error) {
	order := string(sort)
	if desc {
		order += " DESC"
	}

	var rooms []models.Room
	if err := d.db.Order(order).Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

// DeleteRoom удаляет комнату вместе с её бронями
func (d *Database) DeleteRoom(id uint) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Booking{}, "room_id = ?", id).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.Room{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrRoomNotFound
		}
		return nil
	})
}
