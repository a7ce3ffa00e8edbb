package repositories

import (
	"fmt"
	"time"

	"civic/internal/models"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database drivers accepted by OpenDatabase.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// OpenDatabase connects to the given driver and migrates the schema.
func OpenDatabase(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case DriverSQLite:
		dialector = sqlite.Open(dsn)
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: newGORMLogger(log.StandardLogger())})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// newGORMLogger routes GORM's warnings and slow queries through w. Lookups
// that find nothing are expected and not logged.
func newGORMLogger(w logger.Writer) logger.Interface {
	return logger.New(w, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

// Migrate creates or updates the tables for all three collections.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Action{}, &models.Participation{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// nextSeq returns the next insertion sequence number for model's table.
func nextSeq(tx *gorm.DB, model interface{}) (int64, error) {
	var max int64
	if err := tx.Model(model).Select("COALESCE(MAX(seq), 0)").Scan(&max).Error; err != nil {
		return 0, fmt.Errorf("failed to read insertion sequence: %w", err)
	}
	return max + 1, nil
}
