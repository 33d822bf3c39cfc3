package models

import (
	"time"

	"gorm.io/datatypes"
)

type Client struct {
	ID uint `json:"id" gorm:"primaryKey"`
	AccountFields
	// Favorites holds ids of specialists the client bookmarked.
	Favorites    datatypes.JSONSlice[string] `json:"favorites"`
	Appointments []Appointment               `json:"appointments,omitempty" gorm:"foreignKey:ClientID"`
	Reviews      []Review                    `json:"reviews,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt    time.Time                   `json:"created_at"`
	UpdatedAt    time.Time                   `json:"updated_at"`
}
