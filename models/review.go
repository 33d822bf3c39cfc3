package models

import (
	"time"

	"gorm.io/gorm"
)

type Review struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       uint      `json:"user_id"`
	SpecialistID uint      `json:"specialist_id" gorm:"index"`
	Title        string    `json:"title"`
	Text         string    `json:"text"`
	Rating       float64   `json:"rating" gorm:"type:decimal(2,1);not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BeforeCreate keeps ratings inside the 1.0–5.0 scale.
func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.Rating < 1.0 {
		r.Rating = 1.0
	} else if r.Rating > 5.0 {
		r.Rating = 5.0
	}
	return nil
}
