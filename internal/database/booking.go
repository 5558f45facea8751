package database

import (
	"errors"
	"time"

	"github.com/Immortal-romantic/hotel-booking/internal/models"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func (d *Database) CreateBooking(booking *models.Booking) error {
	if err := d.db.Create(booking).Error; err != nil {
		return translateBookingError(err)
	}
	return nil
}

func (d *Database) GetBooking(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := d.db.First(&booking, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (d *Database) UpdateBooking(booking *models.Booking) error {
	if err := d.db.Save(booking).Error; err != nil {
		return translateBookingError(err)
	}
	return nil
}

func (d *Database) DeleteBooking(id uint) error {
	res := d.db.Delete(&models.Booking{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

func (d *Database) ListBookings(roomID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := d.db.
		Where("room_id = ?", roomID).
		Order("date_start ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// HasOverlap проверяет, пересекается ли интервал [start, end] с существующими
// бронями комнаты. excludeID исключает свою же бронь при обновлении (0 — не
// исключать ничего).
func (d *Database) HasOverlap(roomID uint, start, end time.Time, excludeID uint) (bool, error) {
	query := d.db.Model(&models.Booking{}).
		Where("room_id = ? AND date_start <= ? AND date_end >= ?", roomID, end, start)
	if excludeID != 0 {
		query = query.Where("id != ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// translateBookingError распознаёт срабатывание bookings_no_overlap —
// значит, параллельный запрос успел занять эти даты
func translateBookingError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23P01" {
		return ErrBookingConflict
	}
	return err
}
