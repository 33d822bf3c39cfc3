package graph

import (
	"time"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/citasya/citas-api/models"
)

// accountResolver serves the base field set shared by User, Specialist and
// Client. The stored credential hash never leaves the API: password always
// resolves to an empty string.
type accountResolver struct {
	id     uint
	fields *models.AccountFields
}

func (r *accountResolver) ID() graphql.ID   { return formatID(r.id) }
func (r *accountResolver) Username() string { return r.fields.Username }
func (r *accountResolver) Password() string { return "" }
func (r *accountResolver) Avatar() *string {
	if r.fields.Avatar == "" {
		return nil
	}
	avatar := r.fields.Avatar
	return &avatar
}
func (r *accountResolver) Age() int32     { return int32(r.fields.Age) }
func (r *accountResolver) Gender() string { return r.fields.Gender }
func (r *accountResolver) Phone() string  { return r.fields.Phone }
func (r *accountResolver) Email() string  { return r.fields.Email }
func (r *accountResolver) City() string   { return r.fields.City }
func (r *accountResolver) Street() string { return r.fields.Street }
func (r *accountResolver) Role() string   { return string(r.fields.Role) }
func (r *accountResolver) Active() bool   { return r.fields.Active }

type UserResolver struct {
	accountResolver
}

func newUserResolver(id uint, fields models.AccountFields) *UserResolver {
	return &UserResolver{accountResolver{id: id, fields: &fields}}
}

type SpecialistResolver struct {
	accountResolver
	s *models.Specialist
}

func newSpecialistResolver(s *models.Specialist) *SpecialistResolver {
	return &SpecialistResolver{
		accountResolver: accountResolver{id: s.ID, fields: &s.AccountFields},
		s:               s,
	}
}

func newSpecialistResolvers(list []models.Specialist) []*SpecialistResolver {
	out := make([]*SpecialistResolver, 0, len(list))
	for i := range list {
		out = append(out, newSpecialistResolver(&list[i]))
	}
	return out
}

func (r *SpecialistResolver) Specialtys() *[]string {
	if len(r.s.Specialtys) == 0 {
		return nil
	}
	out := make([]string, 0, len(r.s.Specialtys))
	for _, sp := range r.s.Specialtys {
		out = append(out, string(sp))
	}
	return &out
}

func (r *SpecialistResolver) World() string { return string(r.s.World) }

func (r *SpecialistResolver) WeeklySchedule() *WeeklyScheduleResolver {
	return &WeeklyScheduleResolver{ws: r.s.WeeklySchedule.Data()}
}

func (r *SpecialistResolver) Reviews() *[]*ReviewResolver {
	if len(r.s.Reviews) == 0 {
		return nil
	}
	out := newReviewResolvers(r.s.Reviews)
	return &out
}

func (r *SpecialistResolver) PaymentOption() string { return string(r.s.PaymentOption) }

func (r *SpecialistResolver) Appointments() *[]*AppointmentResolver {
	if len(r.s.Appointments) == 0 {
		return nil
	}
	out := newAppointmentResolvers(r.s.Appointments)
	return &out
}

func (r *SpecialistResolver) Highlighted() bool   { return r.s.Highlighted }
func (r *SpecialistResolver) ServiceType() string { return string(r.s.ServiceType) }

type ClientResolver struct {
	accountResolver
	c *models.Client
}

func newClientResolver(c *models.Client) *ClientResolver {
	return &ClientResolver{
		accountResolver: accountResolver{id: c.ID, fields: &c.AccountFields},
		c:               c,
	}
}

func (r *ClientResolver) Appointments() []*AppointmentResolver {
	return newAppointmentResolvers(r.c.Appointments)
}

func (r *ClientResolver) Favorites() []graphql.ID {
	out := make([]graphql.ID, 0, len(r.c.Favorites))
	for _, fav := range r.c.Favorites {
		out = append(out, graphql.ID(fav))
	}
	return out
}

func (r *ClientResolver) Reviews() *[]*ReviewResolver {
	if len(r.c.Reviews) == 0 {
		return nil
	}
	out := newReviewResolvers(r.c.Reviews)
	return &out
}

type AppointmentResolver struct {
	a *models.Appointment
}

func newAppointmentResolvers(list []models.Appointment) []*AppointmentResolver {
	out := make([]*AppointmentResolver, 0, len(list))
	for i := range list {
		out = append(out, &AppointmentResolver{a: &list[i]})
	}
	return out
}

func (r *AppointmentResolver) ID() graphql.ID           { return formatID(r.a.ID) }
func (r *AppointmentResolver) Date() string             { return r.a.Date }
func (r *AppointmentResolver) StartTime() string        { return r.a.StartTime }
func (r *AppointmentResolver) EstimatedEndTime() string { return r.a.EstimatedEndTime }
func (r *AppointmentResolver) ClientID() graphql.ID     { return formatID(r.a.ClientID) }
func (r *AppointmentResolver) SpecialistID() graphql.ID { return formatID(r.a.SpecialistID) }
func (r *AppointmentResolver) Subject() string          { return r.a.Subject }
func (r *AppointmentResolver) Detail() *string {
	if r.a.Detail == "" {
		return nil
	}
	detail := r.a.Detail
	return &detail
}
func (r *AppointmentResolver) Value() float64 { return r.a.Value }
func (r *AppointmentResolver) Status() string { return string(r.a.Status) }

type ReviewResolver struct {
	rev *models.Review
}

func newReviewResolvers(list []models.Review) []*ReviewResolver {
	out := make([]*ReviewResolver, 0, len(list))
	for i := range list {
		out = append(out, &ReviewResolver{rev: &list[i]})
	}
	return out
}

func (r *ReviewResolver) ID() graphql.ID           { return formatID(r.rev.ID) }
func (r *ReviewResolver) UserID() graphql.ID       { return formatID(r.rev.UserID) }
func (r *ReviewResolver) SpecialistID() graphql.ID { return formatID(r.rev.SpecialistID) }
func (r *ReviewResolver) Title() string            { return r.rev.Title }
func (r *ReviewResolver) Text() string             { return r.rev.Text }
func (r *ReviewResolver) CreatedAt() string        { return r.rev.CreatedAt.Format(time.RFC3339) }
func (r *ReviewResolver) Rating() float64          { return r.rev.Rating }

type TimeSlotResolver struct {
	slot models.TimeSlot
}

func newTimeSlotResolvers(slots []models.TimeSlot) []*TimeSlotResolver {
	out := make([]*TimeSlotResolver, 0, len(slots))
	for _, s := range slots {
		out = append(out, &TimeSlotResolver{slot: s})
	}
	return out
}

func (r *TimeSlotResolver) Start() string { return r.slot.Start }
func (r *TimeSlotResolver) End() string   { return r.slot.End }

type WeeklyScheduleResolver struct {
	ws models.WeeklySchedule
}

func (r *WeeklyScheduleResolver) day(slots []models.TimeSlot) *[]*TimeSlotResolver {
	if len(slots) == 0 {
		return nil
	}
	out := newTimeSlotResolvers(slots)
	return &out
}

func (r *WeeklyScheduleResolver) Monday() *[]*TimeSlotResolver    { return r.day(r.ws.Monday) }
func (r *WeeklyScheduleResolver) Tuesday() *[]*TimeSlotResolver   { return r.day(r.ws.Tuesday) }
func (r *WeeklyScheduleResolver) Wednesday() *[]*TimeSlotResolver { return r.day(r.ws.Wednesday) }
func (r *WeeklyScheduleResolver) Thursday() *[]*TimeSlotResolver  { return r.day(r.ws.Thursday) }
func (r *WeeklyScheduleResolver) Friday() *[]*TimeSlotResolver    { return r.day(r.ws.Friday) }
func (r *WeeklyScheduleResolver) Saturday() *[]*TimeSlotResolver  { return r.day(r.ws.Saturday) }
func (r *WeeklyScheduleResolver) Sunday() *[]*TimeSlotResolver    { return r.day(r.ws.Sunday) }

type DayResolver struct {
	d *models.Day
}

func (r *DayResolver) Date() string { return r.d.Date }
func (r *DayResolver) AvailableTimeSlots() []*TimeSlotResolver {
	return newTimeSlotResolvers(r.d.AvailableTimeSlots)
}
func (r *DayResolver) Appointments() []*AppointmentResolver {
	return newAppointmentResolvers(r.d.Appointments)
}
func (r *DayResolver) Weekday() string { return r.d.Weekday }

type AuthPayloadResolver struct {
	token string
}

func (r *AuthPayloadResolver) Value() *string {
	token := r.token
	return &token
}
