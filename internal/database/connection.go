package database

import (
	"context"

	"github.com/Immortal-romantic/hotel-booking/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(dsn string) (*Database, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.Room{}, &models.Booking{}); err != nil {
		return nil, err
	}

	d := NewDatabase(db)
	if err := d.ensureOverlapConstraint(); err != nil {
		return nil, err
	}
	return d, nil
}

// ensureOverlapConstraint добавляет exclusion constraint на пересечение
// интервалов брони. Проверка в приложении не спасает от гонки двух
// одновременных create — последнее слово за базой.
func (d *Database) ensureOverlapConstraint() error {
	if err := d.db.Exec("CREATE EXTENSION IF NOT EXISTS btree_gist").Error; err != nil {
		return err
	}

	var count int64
	err := d.db.Raw(
		"SELECT count(*) FROM pg_constraint WHERE conname = 'bookings_no_overlap'",
	).Scan(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return d.db.Exec(
		`ALTER TABLE bookings ADD CONSTRAINT bookings_no_overlap
		 EXCLUDE USING gist (room_id WITH =, daterange(date_start, date_end, '[]') WITH &&)`,
	).Error
}

func (d *Database) Ping(ctx context.Context) error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
