package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/citasya/citas-api/models"
)

// CreateReview inserts a review after verifying the specialist exists. The
// reviewer id is checked against clients first, then plain users.
func (s *Store) CreateReview(ctx context.Context, rev *models.Review) error {
	db, cancel := s.begin(ctx)
	defer cancel()

	err := db.Transaction(func(tx *gorm.DB) error {
		return createReviewTx(tx, rev)
	})
	return translate(err)
}

// createReviewTx runs the reference checks and the insert inside the
// caller's transaction. Seeded reviews from createSpecialist and
// createClient share this path.
func createReviewTx(tx *gorm.DB, rev *models.Review) error {
	var sp models.Specialist
	if err := tx.First(&sp, rev.SpecialistID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: specialist %d", ErrNotFound, rev.SpecialistID)
		}
		return err
	}

	var cl models.Client
	err := tx.First(&cl, rev.UserID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		var u models.User
		if err := tx.First(&u, rev.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: user %d", ErrNotFound, rev.UserID)
			}
			return err
		}
	} else if err != nil {
		return err
	}

	return tx.Create(rev).Error
}
