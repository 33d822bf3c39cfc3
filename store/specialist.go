package store

import (
	"context"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/citasya/citas-api/models"
)

func (s *Store) CountSpecialists(ctx context.Context) (int64, error) {
	db, cancel := s.begin(ctx)
	defer cancel()

	var count int64
	if err := db.Model(&models.Specialist{}).Count(&count).Error; err != nil {
		return 0, translate(err)
	}
	return count, nil
}

// FindSpecialists returns all specialists, or, when specialtys is non-empty,
// those offering at least one of the requested specialties.
func (s *Store) FindSpecialists(ctx context.Context, specialtys []models.Specialty) ([]models.Specialist, error) {
	db, cancel := s.begin(ctx)
	defer cancel()

	var all []models.Specialist
	if err := db.Preload("Reviews").Preload("Appointments").Find(&all).Error; err != nil {
		return nil, translate(err)
	}
	if len(specialtys) == 0 {
		return all, nil
	}

	matched := make([]models.Specialist, 0, len(all))
	for i := range all {
		if all[i].HasAnySpecialty(specialtys) {
			matched = append(matched, all[i])
		}
	}
	return matched, nil
}

// FindSpecialistByName does a case-insensitive exact match on username.
func (s *Store) FindSpecialistByName(ctx context.Context, name string) (*models.Specialist, error) {
	db, cancel := s.begin(ctx)
	defer cancel()

	var sp models.Specialist
	err := db.Preload("Reviews").Preload("Appointments").
		Where("LOWER(username) = LOWER(?)", name).
		First(&sp).Error
	if err != nil {
		return nil, translate(err)
	}
	return &sp, nil
}

func (s *Store) GetSpecialist(ctx context.Context, id uint) (*models.Specialist, error) {
	db, cancel := s.begin(ctx)
	defer cancel()

	var sp models.Specialist
	if err := db.Preload("Reviews").Preload("Appointments").First(&sp, id).Error; err != nil {
		return nil, translate(err)
	}
	return &sp, nil
}

// CreateSpecialist inserts the record plus any seeded reviews and
// appointments, all in one transaction. Seeded rows are forced onto the new
// specialist's id and go through the same checks as the standalone
// createReview and booking paths.
func (s *Store) CreateSpecialist(ctx context.Context, sp *models.Specialist, reviews []models.Review, appointments []models.Appointment) error {
	db, cancel := s.begin(ctx)
	defer cancel()

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := checkIdentityFree(tx, sp.Username, sp.Email); err != nil {
			return err
		}
		if err := tx.Create(sp).Error; err != nil {
			return err
		}
		for i := range reviews {
			reviews[i].SpecialistID = sp.ID
			if err := createReviewTx(tx, &reviews[i]); err != nil {
				return err
			}
		}
		for i := range appointments {
			appointments[i].SpecialistID = sp.ID
			if err := createAppointmentTx(tx, &appointments[i]); err != nil {
				return err
			}
		}
		return nil
	})
	return translate(err)
}

// SpecialistPatch carries the partial-update fields; nil means untouched.
// Mirrors UpdateSpecialistInput in the API contract.
type SpecialistPatch struct {
	Username       *string
	Avatar         *string
	Gender         *string
	Phone          *string
	Email          *string
	City           *string
	Street         *string
	Role           *models.Role
	Active         *bool
	Specialtys     *[]models.Specialty
	World          *models.World
	WeeklySchedule *models.WeeklySchedule
	PaymentOption  *models.PaymentOption
	Highlighted    *bool
	ServiceType    *models.ServiceType
}

func (p SpecialistPatch) columns() map[string]interface{} {
	cols := map[string]interface{}{}
	if p.Username != nil {
		cols["username"] = *p.Username
	}
	if p.Avatar != nil {
		cols["avatar"] = *p.Avatar
	}
	if p.Gender != nil {
		cols["gender"] = *p.Gender
	}
	if p.Phone != nil {
		cols["phone"] = *p.Phone
	}
	if p.Email != nil {
		cols["email"] = *p.Email
	}
	if p.City != nil {
		cols["city"] = *p.City
	}
	if p.Street != nil {
		cols["street"] = *p.Street
	}
	if p.Role != nil {
		cols["role"] = *p.Role
	}
	if p.Active != nil {
		cols["active"] = *p.Active
	}
	if p.Specialtys != nil {
		cols["specialtys"] = datatypes.NewJSONSlice(*p.Specialtys)
	}
	if p.World != nil {
		cols["world"] = *p.World
	}
	if p.WeeklySchedule != nil {
		cols["weekly_schedule"] = datatypes.NewJSONType(*p.WeeklySchedule)
	}
	if p.PaymentOption != nil {
		cols["payment_option"] = *p.PaymentOption
	}
	if p.Highlighted != nil {
		cols["highlighted"] = *p.Highlighted
	}
	if p.ServiceType != nil {
		cols["service_type"] = *p.ServiceType
	}
	return cols
}

func (s *Store) UpdateSpecialist(ctx context.Context, id uint, patch SpecialistPatch) (*models.Specialist, error) {
	db, cancel := s.begin(ctx)
	defer cancel()

	var updated models.Specialist
	err := db.Transaction(func(tx *gorm.DB) error {
		var current models.Specialist
		if err := tx.First(&current, id).Error; err != nil {
			return err
		}
		if p := patch.Username; p != nil && *p != current.Username {
			taken, err := usernameTaken(tx, *p)
			if err != nil {
				return err
			}
			if taken {
				return fmt.Errorf("%w: username %q already in use", ErrConflict, *p)
			}
		}
		if cols := patch.columns(); len(cols) > 0 {
			if err := tx.Model(&models.Specialist{}).Where("id = ?", id).Updates(cols).Error; err != nil {
				return err
			}
		}
		return tx.Preload("Reviews").Preload("Appointments").First(&updated, id).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &updated, nil
}

// DeleteSpecialist removes the record and returns its last-known value.
func (s *Store) DeleteSpecialist(ctx context.Context, id uint) (*models.Specialist, error) {
	db, cancel := s.begin(ctx)
	defer cancel()

	var sp models.Specialist
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Reviews").Preload("Appointments").First(&sp, id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Specialist{}, id).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &sp, nil
}

// ToggleSpecialistHighlight flips the promotional flag with a single SQL
// update so concurrent toggles can't lose writes.
func (s *Store) ToggleSpecialistHighlight(ctx context.Context, id uint) (*models.Specialist, error) {
	db, cancel := s.begin(ctx)
	defer cancel()

	res := db.Model(&models.Specialist{}).Where("id = ?", id).
		UpdateColumn("highlighted", gorm.Expr("NOT highlighted"))
	if res.Error != nil {
		return nil, translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: specialist %d", ErrNotFound, id)
	}
	return s.GetSpecialist(ctx, id)
}

// ChangeSpecialtys replaces (not merges) the specialty set of the specialist
// matching the username.
func (s *Store) ChangeSpecialtys(ctx context.Context, name string, specialtys []models.Specialty) (*models.Specialist, error) {
	db, cancel := s.begin(ctx)
	defer cancel()

	res := db.Model(&models.Specialist{}).Where("LOWER(username) = LOWER(?)", name).
		UpdateColumn("specialtys", datatypes.NewJSONSlice(specialtys))
	if res.Error != nil {
		return nil, translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: specialist %q", ErrNotFound, name)
	}
	return s.FindSpecialistByName(ctx, name)
}
