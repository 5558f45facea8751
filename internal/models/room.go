package models

import (
	"time"
)

type Room struct {
	ID          uint    `gorm:"primaryKey"`
	Description string  `gorm:"not null"`
	Price       float64 `gorm:"not null;check:price >= 0"`
	CreatedAt   time.Time

	// Связи
	Bookings []Booking `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE"`
}
