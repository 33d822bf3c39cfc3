package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/citasya/citas-api/models"
)

// Account is the role-agnostic view of any stored account, used by login
// and the "me" lookup. The three kinds share one username namespace.
type Account struct {
	ID uint
	models.AccountFields
}

// FindAccountByUsername searches specialists, clients and plain users, in
// that order, for an exact username match.
func (s *Store) FindAccountByUsername(ctx context.Context, username string) (*Account, error) {
	db, cancel := s.begin(ctx)
	defer cancel()

	var sp models.Specialist
	err := db.Where("username = ?", username).First(&sp).Error
	if err == nil {
		return &Account{ID: sp.ID, AccountFields: sp.AccountFields}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, translate(err)
	}

	var cl models.Client
	err = db.Where("username = ?", username).First(&cl).Error
	if err == nil {
		return &Account{ID: cl.ID, AccountFields: cl.AccountFields}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, translate(err)
	}

	var u models.User
	if err := db.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &Account{ID: u.ID, AccountFields: u.AccountFields}, nil
}

// GetAccount resolves an account by role and id.
func (s *Store) GetAccount(ctx context.Context, role models.Role, id uint) (*Account, error) {
	db, cancel := s.begin(ctx)
	defer cancel()

	switch role {
	case models.RoleSpecialist:
		var sp models.Specialist
		if err := db.First(&sp, id).Error; err != nil {
			return nil, translate(err)
		}
		return &Account{ID: sp.ID, AccountFields: sp.AccountFields}, nil
	case models.RoleClient:
		var cl models.Client
		if err := db.First(&cl, id).Error; err != nil {
			return nil, translate(err)
		}
		return &Account{ID: cl.ID, AccountFields: cl.AccountFields}, nil
	case models.RoleAdmin:
		var u models.User
		if err := db.First(&u, id).Error; err != nil {
			return nil, translate(err)
		}
		return &Account{ID: u.ID, AccountFields: u.AccountFields}, nil
	default:
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalid, role)
	}
}

// usernameTaken checks the shared username namespace across all three
// account tables. Runs inside the caller's transaction.
func usernameTaken(tx *gorm.DB, username string) (bool, error) {
	for _, model := range []interface{}{&models.Specialist{}, &models.Client{}, &models.User{}} {
		var count int64
		if err := tx.Model(model).Where("username = ?", username).Count(&count).Error; err != nil {
			return false, err
		}
		if count > 0 {
			return true, nil
		}
	}
	return false, nil
}

func emailTaken(tx *gorm.DB, email string) (bool, error) {
	for _, model := range []interface{}{&models.Specialist{}, &models.Client{}, &models.User{}} {
		var count int64
		if err := tx.Model(model).Where("email = ?", email).Count(&count).Error; err != nil {
			return false, err
		}
		if count > 0 {
			return true, nil
		}
	}
	return false, nil
}

func checkIdentityFree(tx *gorm.DB, username, email string) error {
	taken, err := usernameTaken(tx, username)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("%w: username %q already in use", ErrConflict, username)
	}
	taken, err = emailTaken(tx, email)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("%w: email %q already in use", ErrConflict, email)
	}
	return nil
}
