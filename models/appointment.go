package models

import (
	"time"

	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusWaiting   AppointmentStatus = "waiting"
	StatusScheduled AppointmentStatus = "scheduled"
	StatusPending   AppointmentStatus = "pending"
	StatusCompleted AppointmentStatus = "completed"
)

type Appointment struct {
	ID               uint              `json:"id" gorm:"primaryKey"`
	Date             string            `json:"date" gorm:"index"` // "2006-01-02"
	StartTime        string            `json:"start_time"`        // "15:04", 24h
	EstimatedEndTime string            `json:"estimated_end_time"`
	ClientID         uint              `json:"client_id" gorm:"index"`
	SpecialistID     uint              `json:"specialist_id" gorm:"index"`
	Subject          string            `json:"subject"`
	Detail           string            `json:"detail,omitempty"`
	Value            float64           `json:"value"`
	Status           AppointmentStatus `json:"status"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = StatusWaiting
	}
	return nil
}

// Slot returns the booked window as a time slot.
func (a *Appointment) Slot() TimeSlot {
	return TimeSlot{Start: a.StartTime, End: a.EstimatedEndTime}
}
