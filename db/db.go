package db

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres connection. The handle is returned to the
// caller (main owns its lifecycle) instead of living in a package global.
func Connect(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("✅ Database connection established successfully!")
	return database, nil
}

// Close releases the underlying connection pool.
func Close(database *gorm.DB) {
	sqlDB, err := database.DB()
	if err != nil {
		log.Println("Warning: could not fetch underlying DB handle:", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Println("Warning: error closing database:", err)
	}
}
