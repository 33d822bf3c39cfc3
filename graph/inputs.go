package graph

import (
	"strconv"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/citasya/citas-api/models"
	"github.com/citasya/citas-api/store"
)

type timeSlotInput struct {
	Start string
	End   string
}

type weeklyScheduleInput struct {
	Monday    *[]timeSlotInput
	Tuesday   *[]timeSlotInput
	Wednesday *[]timeSlotInput
	Thursday  *[]timeSlotInput
	Friday    *[]timeSlotInput
	Saturday  *[]timeSlotInput
	Sunday    *[]timeSlotInput
}

func (in weeklyScheduleInput) toModel() models.WeeklySchedule {
	return models.WeeklySchedule{
		Monday:    slotsToModel(in.Monday),
		Tuesday:   slotsToModel(in.Tuesday),
		Wednesday: slotsToModel(in.Wednesday),
		Thursday:  slotsToModel(in.Thursday),
		Friday:    slotsToModel(in.Friday),
		Saturday:  slotsToModel(in.Saturday),
		Sunday:    slotsToModel(in.Sunday),
	}
}

func slotsToModel(in *[]timeSlotInput) []models.TimeSlot {
	if in == nil {
		return nil
	}
	out := make([]models.TimeSlot, 0, len(*in))
	for _, s := range *in {
		out = append(out, models.TimeSlot{Start: s.Start, End: s.End})
	}
	return out
}

type appointmentInput struct {
	Date             string
	StartTime        string
	EstimatedEndTime string
	ClientID         graphql.ID
	SpecialistID     graphql.ID
	Subject          string
	Detail           *string
	Value            float64
	Status           *string
}

func (in appointmentInput) toModel() (models.Appointment, error) {
	clientID, err := parseID(in.ClientID)
	if err != nil {
		return models.Appointment{}, errValidation("clientId: " + err.Error())
	}
	specialistID, err := parseID(in.SpecialistID)
	if err != nil {
		return models.Appointment{}, errValidation("specialistId: " + err.Error())
	}
	appt := models.Appointment{
		Date:             in.Date,
		StartTime:        in.StartTime,
		EstimatedEndTime: in.EstimatedEndTime,
		ClientID:         clientID,
		SpecialistID:     specialistID,
		Subject:          in.Subject,
		Value:            in.Value,
	}
	if in.Detail != nil {
		appt.Detail = *in.Detail
	}
	if in.Status != nil {
		appt.Status = models.AppointmentStatus(*in.Status)
	}
	return appt, nil
}

type reviewInput struct {
	UserID       graphql.ID
	SpecialistID graphql.ID
	Title        string
	Text         string
	Rating       float64
}

func (in reviewInput) toModel() (models.Review, error) {
	userID, err := parseID(in.UserID)
	if err != nil {
		return models.Review{}, errValidation("userId: " + err.Error())
	}
	specialistID, err := parseID(in.SpecialistID)
	if err != nil {
		return models.Review{}, errValidation("specialistId: " + err.Error())
	}
	return models.Review{
		UserID:       userID,
		SpecialistID: specialistID,
		Title:        in.Title,
		Text:         in.Text,
		Rating:       in.Rating,
	}, nil
}

type specialistInput struct {
	Username       string
	Password       string
	Avatar         *string
	Age            int32
	Gender         string
	Phone          string
	Email          string
	City           string
	Street         string
	Role           string
	Active         *bool
	Specialtys     *[]string
	World          string
	WeeklySchedule weeklyScheduleInput
	Reviews        *[]reviewInput
	PaymentOption  string
	Appointments   *[]appointmentInput
	Highlighted    *bool
	ServiceType    string
}

type clientInput struct {
	Username     string
	Password     string
	Avatar       *string
	Age          int32
	Gender       string
	Phone        string
	Email        string
	City         string
	Street       string
	Role         string
	Active       *bool
	Appointments []appointmentInput
	Favorites    []graphql.ID
	Reviews      *[]reviewInput
}

type updateSpecialistInput struct {
	Username       *string
	Avatar         *string
	Gender         *string
	Phone          *string
	Email          *string
	City           *string
	Street         *string
	Role           *string
	Active         *bool
	Specialtys     *[]string
	World          *string
	WeeklySchedule *weeklyScheduleInput
	PaymentOption  *string
	Highlighted    *bool
	ServiceType    *string
}

func (in updateSpecialistInput) toPatch() (store.SpecialistPatch, error) {
	patch := store.SpecialistPatch{
		Username:    in.Username,
		Avatar:      in.Avatar,
		Gender:      in.Gender,
		Phone:       in.Phone,
		Email:       in.Email,
		City:        in.City,
		Street:      in.Street,
		Active:      in.Active,
		Highlighted: in.Highlighted,
	}
	if in.Role != nil {
		if models.Role(*in.Role) != models.RoleSpecialist {
			return patch, errValidation("a specialist's role must stay \"specialist\"")
		}
		role := models.RoleSpecialist
		patch.Role = &role
	}
	if in.Specialtys != nil {
		specialtys := toSpecialtys(*in.Specialtys)
		patch.Specialtys = &specialtys
	}
	if in.World != nil {
		world := models.World(*in.World)
		patch.World = &world
	}
	if in.WeeklySchedule != nil {
		schedule := in.WeeklySchedule.toModel()
		if err := schedule.Validate(); err != nil {
			return patch, errValidation(err.Error())
		}
		patch.WeeklySchedule = &schedule
	}
	if in.PaymentOption != nil {
		pay := models.PaymentOption(*in.PaymentOption)
		patch.PaymentOption = &pay
	}
	if in.ServiceType != nil {
		svc := models.ServiceType(*in.ServiceType)
		patch.ServiceType = &svc
	}
	return patch, nil
}

type updateClientInput struct {
	Username  *string
	Avatar    *string
	Gender    *string
	Phone     *string
	Email     *string
	City      *string
	Street    *string
	Role      *string
	Active    *bool
	Favorites *[]graphql.ID
}

func (in updateClientInput) toPatch() (store.ClientPatch, error) {
	patch := store.ClientPatch{
		Username: in.Username,
		Avatar:   in.Avatar,
		Gender:   in.Gender,
		Phone:    in.Phone,
		Email:    in.Email,
		City:     in.City,
		Street:   in.Street,
		Active:   in.Active,
	}
	if in.Role != nil {
		if models.Role(*in.Role) != models.RoleClient {
			return patch, errValidation("a client's role must stay \"client\"")
		}
		role := models.RoleClient
		patch.Role = &role
	}
	if in.Favorites != nil {
		favorites := make([]string, 0, len(*in.Favorites))
		for _, id := range *in.Favorites {
			favorites = append(favorites, string(id))
		}
		patch.Favorites = &favorites
	}
	return patch, nil
}

func toSpecialtys(values []string) []models.Specialty {
	out := make([]models.Specialty, 0, len(values))
	for _, v := range values {
		out = append(out, models.Specialty(v))
	}
	return out
}

func parseID(id graphql.ID) (uint, error) {
	parsed, err := strconv.ParseUint(string(id), 10, 64)
	if err != nil {
		return 0, errValidation("malformed id " + strconv.Quote(string(id)))
	}
	return uint(parsed), nil
}

func formatID(id uint) graphql.ID {
	return graphql.ID(strconv.FormatUint(uint64(id), 10))
}
