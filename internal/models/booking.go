package models

import (
	"time"
)

type Booking struct {
	ID        uint      `gorm:"primaryKey"`
	RoomID    uint      `gorm:"not null;index"`
	DateStart time.Time `gorm:"type:date;not null"`
	DateEnd   time.Time `gorm:"type:date;not null"`
	CreatedAt time.Time
}

// Overlaps проверяет пересечение с интервалом [start, end].
// Интервалы закрытые с обеих сторон: бронь, заканчивающаяся в день X,
// конфликтует с бронью, начинающейся в день X.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return !b.DateEnd.Before(start) && !b.DateStart.After(end)
}

// ValidInterval проверяет, что начало интервала не позже конца
func ValidInterval(start, end time.Time) bool {
	return !start.After(end)
}
