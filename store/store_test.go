package store

import (
	"fmt"
	"strings"
	"testing"

	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/citasya/citas-api/models"
)

// newTestStore opens a per-test in-memory SQLite database with the full
// schema applied.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	err = database.AutoMigrate(
		&models.User{},
		&models.Specialist{},
		&models.Client{},
		&models.Appointment{},
		&models.Review{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := database.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return New(database)
}

func testSpecialist(username string) *models.Specialist {
	return &models.Specialist{
		AccountFields: models.AccountFields{
			Username: username,
			Password: "hashed",
			Age:      30,
			Gender:   "F",
			Phone:    "555-0100",
			Email:    username + "@example.com",
			City:     "Bogota",
			Street:   "Calle 1",
			Role:     models.RoleSpecialist,
			Active:   true,
		},
		Specialtys: datatypes.NewJSONSlice([]models.Specialty{models.SpecialtyManicura}),
		World:      models.WorldMujer,
		WeeklySchedule: datatypes.NewJSONType(models.WeeklySchedule{
			Monday: []models.TimeSlot{{Start: "09:00", End: "12:00"}},
		}),
		PaymentOption: models.PayWeekly,
		ServiceType:   models.ServiceMixto,
	}
}

func testClient(username string) *models.Client {
	return &models.Client{
		AccountFields: models.AccountFields{
			Username: username,
			Password: "hashed",
			Age:      25,
			Gender:   "M",
			Phone:    "555-0200",
			Email:    username + "@example.com",
			City:     "Medellin",
			Street:   "Carrera 7",
			Role:     models.RoleClient,
			Active:   true,
		},
	}
}
