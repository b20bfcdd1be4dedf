package db

import (
	"github.com/movieweb-dev/movieweb/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the database and returns the handle. Callers pass it down
// explicitly; there is no package-level connection.
func Connect(dsn string) (*gorm.DB, error) {
	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		return nil, err
	}

	return conn, nil
}

func MigrateDatabase(conn *gorm.DB) error {
	tables := []interface{}{
		&models.User{},
		&models.Movie{},
	}

	migrator := conn.Migrator()

	for _, table := range tables {
		if !migrator.HasTable(table) {
			if err := conn.AutoMigrate(table); err != nil {
				return err
			}
		}
	}

	return nil
}
