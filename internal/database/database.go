package database

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Dialector picks the driver from the connection string. PostgreSQL URLs
// and key=value DSNs go to postgres, anything else is a SQLite file.
func Dialector(url string) gorm.Dialector {
	if isPostgres(url) {
		return postgres.Open(url)
	}
	return sqlite.Open(url)
}

func isPostgres(url string) bool {
	u := strings.TrimSpace(url)
	return strings.HasPrefix(u, "postgres://") ||
		strings.HasPrefix(u, "postgresql://") ||
		strings.HasPrefix(u, "host=")
}

// Open connects to the database and prepares the connection for the
// repositories.
func Open(url string) (*gorm.DB, error) {
	dialector := Dialector(url)

	db, err := gorm.Open(dialector, &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", dialector.Name(), err)
	}

	if dialector.Name() == DriverSQLite {
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			logrus.Infof("Warning: Failed to enable foreign keys: %v", err)
		}
	}

	logrus.WithField("driver", dialector.Name()).Info("Database connection established")
	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	return sqlDB.Close()
}
