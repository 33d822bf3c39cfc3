package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/citasya/citas-api/models"
)

// Migrate applies the schema for every record kind.
func Migrate(database *gorm.DB) error {
	err := database.AutoMigrate(
		&models.User{},
		&models.Specialist{},
		&models.Client{},
		&models.Appointment{},
		&models.Review{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
	return nil
}
