package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/citasya/citas-api/models"
)

func (s *Store) GetClient(ctx context.Context, id uint) (*models.Client, error) {
	db, cancel := s.begin(ctx)
	defer cancel()

	var cl models.Client
	if err := db.Preload("Appointments").Preload("Reviews").First(&cl, id).Error; err != nil {
		return nil, translate(err)
	}
	return &cl, nil
}

func (s *Store) GetClients(ctx context.Context) ([]models.Client, error) {
	db, cancel := s.begin(ctx)
	defer cancel()

	var clients []models.Client
	if err := db.Preload("Appointments").Preload("Reviews").Find(&clients).Error; err != nil {
		return nil, translate(err)
	}
	return clients, nil
}

// CreateClient inserts the record plus any seeded appointments and reviews
// in one transaction. Favorites must reference existing specialists, and
// seeded rows go through the same checks as the standalone createReview and
// booking paths.
func (s *Store) CreateClient(ctx context.Context, cl *models.Client, reviews []models.Review, appointments []models.Appointment) error {
	db, cancel := s.begin(ctx)
	defer cancel()

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := checkIdentityFree(tx, cl.Username, cl.Email); err != nil {
			return err
		}
		if err := checkFavorites(tx, cl.Favorites); err != nil {
			return err
		}
		if err := tx.Create(cl).Error; err != nil {
			return err
		}
		for i := range appointments {
			appointments[i].ClientID = cl.ID
			if err := createAppointmentTx(tx, &appointments[i]); err != nil {
				return err
			}
		}
		for i := range reviews {
			reviews[i].UserID = cl.ID
			if err := createReviewTx(tx, &reviews[i]); err != nil {
				return err
			}
		}
		return nil
	})
	return translate(err)
}

// ClientPatch carries the partial-update fields; nil means untouched.
type ClientPatch struct {
	Username  *string
	Avatar    *string
	Gender    *string
	Phone     *string
	Email     *string
	City      *string
	Street    *string
	Role      *models.Role
	Active    *bool
	Favorites *[]string
}

func (p ClientPatch) columns() map[string]interface{} {
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
	if p.Favorites != nil {
		cols["favorites"] = datatypes.NewJSONSlice(*p.Favorites)
	}
	return cols
}

func (s *Store) UpdateClient(ctx context.Context, id uint, patch ClientPatch) (*models.Client, error) {
	db, cancel := s.begin(ctx)
	defer cancel()

	var updated models.Client
	err := db.Transaction(func(tx *gorm.DB) error {
		var current models.Client
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
		if p := patch.Favorites; p != nil {
			if err := checkFavorites(tx, *p); err != nil {
				return err
			}
		}
		if cols := patch.columns(); len(cols) > 0 {
			if err := tx.Model(&models.Client{}).Where("id = ?", id).Updates(cols).Error; err != nil {
				return err
			}
		}
		return tx.Preload("Appointments").Preload("Reviews").First(&updated, id).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &updated, nil
}

// DeleteClient removes the record and returns its last-known value.
func (s *Store) DeleteClient(ctx context.Context, id uint) (*models.Client, error) {
	db, cancel := s.begin(ctx)
	defer cancel()

	var cl models.Client
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Appointments").Preload("Reviews").First(&cl, id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Client{}, id).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &cl, nil
}

// checkFavorites verifies every favorites entry names an existing specialist.
func checkFavorites(tx *gorm.DB, favorites []string) error {
	for _, fav := range favorites {
		id, err := strconv.ParseUint(fav, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: favorite %q is not a specialist id", ErrInvalid, fav)
		}
		var sp models.Specialist
		if err := tx.First(&sp, uint(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: favorite specialist %s", ErrNotFound, fav)
			}
			return err
		}
	}
	return nil
}
