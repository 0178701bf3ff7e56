package db

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/cat-hotel/internal/config"
	"github.com/BruksfildServices01/cat-hotel/internal/models"
)

// bookingOverlapConstraint rejects two active bookings of one room whose
// [check_in, check_out) ranges intersect, whatever the caller did first.
const bookingOverlapConstraint = `
	ALTER TABLE bookings
	ADD CONSTRAINT bookings_no_overlap
	EXCLUDE USING gist (
		room_id WITH =,
		daterange(check_in_date, check_out_date, '[)') WITH &&
	)
	WHERE (status IN ('pending', 'confirmed', 'checked_in'))
`

// primaryImageIndex allows one primary image per room type.
const primaryImageIndex = `
	CREATE UNIQUE INDEX IF NOT EXISTS room_images_one_primary
	ON room_images (room_type_id)
	WHERE is_primary
`

// Open connects to Postgres, sizes the pool and migrates the schema.
func Open(cfg *config.Config, log *logrus.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
		Logger:      gormlogger.Default.LogMode(gormLevel(log)),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	log.Info("database ready")
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		return fmt.Errorf("enable btree_gist: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Cat{},
		&models.RoomType{},
		&models.RoomImage{},
		&models.Room{},
		&models.Service{},
		&models.Food{},
		&models.Booking{},
		&models.BookingService{},
		&models.BookingFood{},
		&models.CatStatus{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	if err := db.Exec(primaryImageIndex).Error; err != nil {
		return fmt.Errorf("add room_images_one_primary: %w", err)
	}

	var exists bool
	if err := db.Raw(
		`SELECT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = ?)`,
		"bookings_no_overlap",
	).Scan(&exists).Error; err != nil {
		return fmt.Errorf("inspect constraints: %w", err)
	}
	if !exists {
		if err := db.Exec(bookingOverlapConstraint).Error; err != nil {
			return fmt.Errorf("add bookings_no_overlap: %w", err)
		}
	}

	return nil
}

// Close releases the pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func gormLevel(log *logrus.Logger) gormlogger.LogLevel {
	switch {
	case log.IsLevelEnabled(logrus.DebugLevel):
		return gormlogger.Info
	case log.IsLevelEnabled(logrus.WarnLevel):
		return gormlogger.Warn
	default:
		return gormlogger.Error
	}
}
