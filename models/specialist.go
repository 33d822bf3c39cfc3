package models

import (
	"time"

	"gorm.io/datatypes"
)

type Specialty string

const (
	SpecialtyPeluqueria Specialty = "Peluqueria"
	SpecialtyManicura   Specialty = "Manicura"
	SpecialtyPedicura   Specialty = "Pedicura"
)

type World string

const (
	WorldHombre  World = "Hombre"
	WorldMujer   World = "Mujer"
	WorldMascota World = "Mascota"
)

type ServiceType string

const (
	ServiceDomicilio ServiceType = "Domicilio"
	ServiceCasa      ServiceType = "Casa"
	ServiceMixto     ServiceType = "Mixto"
)

type PaymentOption string

const (
	PayWeekly   PaymentOption = "weekly"
	PayBiweekly PaymentOption = "biweekly"
	PayMonthly  PaymentOption = "monthly"
)

type Specialist struct {
	ID uint `json:"id" gorm:"primaryKey"`
	AccountFields
	Specialtys     datatypes.JSONSlice[Specialty]     `json:"specialtys"`
	World          World                              `json:"world"`
	WeeklySchedule datatypes.JSONType[WeeklySchedule] `json:"weekly_schedule"`
	PaymentOption  PaymentOption                      `json:"payment_option"`
	Highlighted    bool                               `json:"highlighted"`
	ServiceType    ServiceType                        `json:"service_type"`
	Reviews        []Review                           `json:"reviews,omitempty" gorm:"foreignKey:SpecialistID"`
	Appointments   []Appointment                      `json:"appointments,omitempty" gorm:"foreignKey:SpecialistID"`
	CreatedAt      time.Time                          `json:"created_at"`
	UpdatedAt      time.Time                          `json:"updated_at"`
}

// HasAnySpecialty reports whether the specialist offers at least one of the
// requested specialties (multi-select filters use OR semantics).
func (s *Specialist) HasAnySpecialty(want []Specialty) bool {
	for _, w := range want {
		for _, have := range s.Specialtys {
			if have == w {
				return true
			}
		}
	}
	return false
}
