package graph

import (
	"context"
	"errors"
	"log"

	graphql "github.com/graph-gophers/graphql-go"
	"gorm.io/datatypes"

	"github.com/citasya/citas-api/auth"
	"github.com/citasya/citas-api/models"
	"github.com/citasya/citas-api/store"
	"github.com/citasya/citas-api/utils"
)

// Login verifies credentials and issues a session token. Unknown username
// and wrong password produce the same error.
func (r *Resolver) Login(ctx context.Context, args struct{ Username, Password string }) (*AuthPayloadResolver, error) {
	acct, err := r.Store.FindAccountByUsername(ctx, args.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, errAuth()
		}
		return nil, fromStore(err)
	}
	if !auth.CheckPassword(acct.Password, args.Password) {
		return nil, errAuth()
	}

	token, err := auth.IssueToken(acct.ID, acct.Role)
	if err != nil {
		return nil, &Error{Code: CodeUnavailable, Message: "failed to issue token"}
	}
	return &AuthPayloadResolver{token: token}, nil
}

func (r *Resolver) CreateSpecialist(ctx context.Context, args struct{ Input specialistInput }) (*SpecialistResolver, error) {
	in := args.Input
	if models.Role(in.Role) != models.RoleSpecialist {
		return nil, errValidation(`a specialist's role must be "specialist"`)
	}
	if in.Username == "" || in.Password == "" {
		return nil, errValidation("username and password are required")
	}
	schedule := in.WeeklySchedule.toModel()
	if err := schedule.Validate(); err != nil {
		return nil, errValidation(err.Error())
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, &Error{Code: CodeUnavailable, Message: "failed to hash password"}
	}

	sp := models.Specialist{
		AccountFields: models.AccountFields{
			Username: in.Username,
			Password: hash,
			Avatar:   hostedAvatar(in.Avatar),
			Age:      int(in.Age),
			Gender:   in.Gender,
			Phone:    in.Phone,
			Email:    in.Email,
			City:     in.City,
			Street:   in.Street,
			Role:     models.RoleSpecialist,
			Active:   in.Active == nil || *in.Active,
		},
		World:          models.World(in.World),
		WeeklySchedule: datatypes.NewJSONType(schedule),
		PaymentOption:  models.PaymentOption(in.PaymentOption),
		Highlighted:    in.Highlighted != nil && *in.Highlighted,
		ServiceType:    models.ServiceType(in.ServiceType),
	}
	if in.Specialtys != nil {
		sp.Specialtys = datatypes.NewJSONSlice(toSpecialtys(*in.Specialtys))
	}

	reviews, err := seedReviews(in.Reviews)
	if err != nil {
		return nil, err
	}
	appointments, err := seedAppointments(in.Appointments)
	if err != nil {
		return nil, err
	}

	if err := r.Store.CreateSpecialist(ctx, &sp, reviews, appointments); err != nil {
		return nil, fromStore(err)
	}
	created, err := r.Store.GetSpecialist(ctx, sp.ID)
	if err != nil {
		return nil, fromStore(err)
	}
	return newSpecialistResolver(created), nil
}

func (r *Resolver) CreateClient(ctx context.Context, args struct{ Input clientInput }) (*ClientResolver, error) {
	in := args.Input
	if models.Role(in.Role) != models.RoleClient {
		return nil, errValidation(`a client's role must be "client"`)
	}
	if in.Username == "" || in.Password == "" {
		return nil, errValidation("username and password are required")
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, &Error{Code: CodeUnavailable, Message: "failed to hash password"}
	}

	favorites := make([]string, 0, len(in.Favorites))
	for _, fav := range in.Favorites {
		favorites = append(favorites, string(fav))
	}
	cl := models.Client{
		AccountFields: models.AccountFields{
			Username: in.Username,
			Password: hash,
			Avatar:   hostedAvatar(in.Avatar),
			Age:      int(in.Age),
			Gender:   in.Gender,
			Phone:    in.Phone,
			Email:    in.Email,
			City:     in.City,
			Street:   in.Street,
			Role:     models.RoleClient,
			Active:   in.Active == nil || *in.Active,
		},
		Favorites: datatypes.NewJSONSlice(favorites),
	}

	reviews, err := seedReviews(in.Reviews)
	if err != nil {
		return nil, err
	}
	seeded := in.Appointments
	appointments, err := seedAppointments(&seeded)
	if err != nil {
		return nil, err
	}

	if err := r.Store.CreateClient(ctx, &cl, reviews, appointments); err != nil {
		return nil, fromStore(err)
	}
	created, err := r.Store.GetClient(ctx, cl.ID)
	if err != nil {
		return nil, fromStore(err)
	}
	return newClientResolver(created), nil
}

func (r *Resolver) UpdateSpecialist(ctx context.Context, args struct {
	ID    graphql.ID
	Input updateSpecialistInput
}) (*SpecialistResolver, error) {
	id, err := parseID(args.ID)
	if err != nil {
		return nil, err
	}
	if err := requireSelfOrAdmin(ctx, models.RoleSpecialist, id); err != nil {
		return nil, err
	}
	patch, err := args.Input.toPatch()
	if err != nil {
		return nil, err
	}
	sp, err := r.Store.UpdateSpecialist(ctx, id, patch)
	if err != nil {
		return nil, fromStore(err)
	}
	return newSpecialistResolver(sp), nil
}

func (r *Resolver) UpdateClient(ctx context.Context, args struct {
	ID    graphql.ID
	Input updateClientInput
}) (*ClientResolver, error) {
	id, err := parseID(args.ID)
	if err != nil {
		return nil, err
	}
	if err := requireSelfOrAdmin(ctx, models.RoleClient, id); err != nil {
		return nil, err
	}
	patch, err := args.Input.toPatch()
	if err != nil {
		return nil, err
	}
	cl, err := r.Store.UpdateClient(ctx, id, patch)
	if err != nil {
		return nil, fromStore(err)
	}
	return newClientResolver(cl), nil
}

func (r *Resolver) DeleteSpecialist(ctx context.Context, args struct{ ID graphql.ID }) (*SpecialistResolver, error) {
	id, err := parseID(args.ID)
	if err != nil {
		return nil, err
	}
	if err := requireSelfOrAdmin(ctx, models.RoleSpecialist, id); err != nil {
		return nil, err
	}
	sp, err := r.Store.DeleteSpecialist(ctx, id)
	if err != nil {
		return nil, fromStore(err)
	}
	return newSpecialistResolver(sp), nil
}

func (r *Resolver) DeleteClient(ctx context.Context, args struct{ ID graphql.ID }) (*ClientResolver, error) {
	id, err := parseID(args.ID)
	if err != nil {
		return nil, err
	}
	if err := requireSelfOrAdmin(ctx, models.RoleClient, id); err != nil {
		return nil, err
	}
	cl, err := r.Store.DeleteClient(ctx, id)
	if err != nil {
		return nil, fromStore(err)
	}
	return newClientResolver(cl), nil
}

// ToggleSpecialistHighlight flips the promotional flag. Admin only.
func (r *Resolver) ToggleSpecialistHighlight(ctx context.Context, args struct{ ID graphql.ID }) (*SpecialistResolver, error) {
	id, err := parseID(args.ID)
	if err != nil {
		return nil, err
	}
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	sp, err := r.Store.ToggleSpecialistHighlight(ctx, id)
	if err != nil {
		return nil, fromStore(err)
	}
	return newSpecialistResolver(sp), nil
}

// ChangeSpecialtys replaces the specialty set of the specialist matching
// the username. The viewer is checked before the lookup so anonymous
// callers can't probe which usernames exist.
func (r *Resolver) ChangeSpecialtys(ctx context.Context, args struct {
	Name       string
	Specialtys *[]string
}) (*SpecialistResolver, error) {
	if _, ok := ViewerFrom(ctx); !ok {
		return nil, errUnauthenticated()
	}
	sp, err := r.Store.FindSpecialistByName(ctx, args.Name)
	if err != nil {
		return nil, fromStore(err)
	}
	if err := requireSelfOrAdmin(ctx, models.RoleSpecialist, sp.ID); err != nil {
		return nil, err
	}
	var specialtys []models.Specialty
	if args.Specialtys != nil {
		specialtys = toSpecialtys(*args.Specialtys)
	}
	updated, err := r.Store.ChangeSpecialtys(ctx, args.Name, specialtys)
	if err != nil {
		return nil, fromStore(err)
	}
	return newSpecialistResolver(updated), nil
}

func (r *Resolver) CreateAppointment(ctx context.Context, args struct{ Input appointmentInput }) (*AppointmentResolver, error) {
	return r.bookAppointment(ctx, args.Input)
}

// ScheduleAppointment shares the creation path with CreateAppointment; the
// contract exposes both names.
func (r *Resolver) ScheduleAppointment(ctx context.Context, args struct{ Input appointmentInput }) (*AppointmentResolver, error) {
	return r.bookAppointment(ctx, args.Input)
}

func (r *Resolver) bookAppointment(ctx context.Context, in appointmentInput) (*AppointmentResolver, error) {
	appt, err := in.toModel()
	if err != nil {
		return nil, err
	}
	if err := r.Store.CreateAppointment(ctx, &appt); err != nil {
		return nil, fromStore(err)
	}
	return &AppointmentResolver{a: &appt}, nil
}

func (r *Resolver) CreateReview(ctx context.Context, args struct{ Input reviewInput }) (*ReviewResolver, error) {
	rev, err := args.Input.toModel()
	if err != nil {
		return nil, err
	}
	if err := r.Store.CreateReview(ctx, &rev); err != nil {
		return nil, fromStore(err)
	}
	return &ReviewResolver{rev: &rev}, nil
}

func requireAdmin(ctx context.Context) error {
	v, ok := ViewerFrom(ctx)
	if !ok {
		return errUnauthenticated()
	}
	if v.Role != models.RoleAdmin {
		return errForbidden("admin only")
	}
	return nil
}

func requireSelfOrAdmin(ctx context.Context, role models.Role, id uint) error {
	v, ok := ViewerFrom(ctx)
	if !ok {
		return errUnauthenticated()
	}
	if v.Role == models.RoleAdmin {
		return nil
	}
	if v.Role == role && v.ID == id {
		return nil
	}
	return errForbidden("not allowed to manage this account")
}

func hostedAvatar(avatar *string) string {
	if avatar == nil || *avatar == "" {
		return ""
	}
	hosted, err := utils.UploadAvatar(*avatar)
	if err != nil {
		log.Printf("avatar upload failed, storing source URL: %v", err)
		return *avatar
	}
	return hosted
}

func seedReviews(in *[]reviewInput) ([]models.Review, error) {
	if in == nil {
		return nil, nil
	}
	out := make([]models.Review, 0, len(*in))
	for _, ri := range *in {
		rev, err := ri.toModel()
		if err != nil {
			return nil, err
		}
		out = append(out, rev)
	}
	return out, nil
}

func seedAppointments(in *[]appointmentInput) ([]models.Appointment, error) {
	if in == nil {
		return nil, nil
	}
	out := make([]models.Appointment, 0, len(*in))
	for _, ai := range *in {
		appt, err := ai.toModel()
		if err != nil {
			return nil, err
		}
		out = append(out, appt)
	}
	return out, nil
}
