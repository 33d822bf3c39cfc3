package models

import (
	"time"
)

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSpecialist Role = "specialist"
	RoleClient     Role = "client"
)

// AccountFields is the attribute set shared by every account kind
// (User, Specialist, Client). Password always holds the bcrypt hash,
// never the cleartext.
type AccountFields struct {
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Password string `json:"password,omitempty" gorm:"not null"`
	Avatar   string `json:"avatar,omitempty"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
	Phone    string `json:"phone"`
	Email    string `json:"email" gorm:"uniqueIndex"`
	City     string `json:"city"`
	Street   string `json:"street"`
	Role     Role   `json:"role"`
	Active   bool   `json:"active"`
}

// User is a plain account with no specialization. Admin accounts live here.
type User struct {
	ID uint `json:"id" gorm:"primaryKey"`
	AccountFields
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
