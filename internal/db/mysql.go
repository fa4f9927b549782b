package db

import (
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"doctorsportal/internal/model"
)

// tables lists every model stored in MySQL, dependents first.
var tables = []interface{}{
	&model.Booking{},
	&model.Doctor{},
	&model.Service{},
	&model.User{},
}

// NewMySQL returns a connected GORM DB instance.
func NewMySQL(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the schema. With reset set, existing tables are
// dropped first.
func Migrate(db *gorm.DB, reset bool, logger zerolog.Logger) error {
	if reset {
		logger.Warn().Msg("RESET_DB=true detected, dropping all tables")
		for _, table := range tables {
			if err := db.Migrator().DropTable(table); err != nil {
				logger.Warn().Err(err).Msg("drop table failed (may not exist)")
			}
		}
	}

	if err := db.AutoMigrate(tables...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

// CloseMySQL releases the underlying connection pool.
func CloseMySQL(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
