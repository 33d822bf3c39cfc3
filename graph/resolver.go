package graph

import (
	"context"
	"errors"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/citasya/citas-api/models"
	"github.com/citasya/citas-api/store"
)

// Resolver is the root resolver; every query and mutation goes through the
// injected store.
type Resolver struct {
	Store *store.Store
}

func (r *Resolver) SpecialistCount(ctx context.Context) (int32, error) {
	count, err := r.Store.CountSpecialists(ctx)
	if err != nil {
		return 0, fromStore(err)
	}
	return int32(count), nil
}

func (r *Resolver) FindSpecialists(ctx context.Context, args struct{ Specialtys *[]string }) ([]*SpecialistResolver, error) {
	var want []models.Specialty
	if args.Specialtys != nil {
		want = toSpecialtys(*args.Specialtys)
	}
	specialists, err := r.Store.FindSpecialists(ctx, want)
	if err != nil {
		return nil, fromStore(err)
	}
	return newSpecialistResolvers(specialists), nil
}

func (r *Resolver) FindSpecialistByName(ctx context.Context, args struct{ Name string }) (*SpecialistResolver, error) {
	sp, err := r.Store.FindSpecialistByName(ctx, args.Name)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fromStore(err)
	}
	return newSpecialistResolver(sp), nil
}

func (r *Resolver) GetClient(ctx context.Context, args struct{ ID graphql.ID }) (*ClientResolver, error) {
	id, err := parseID(args.ID)
	if err != nil {
		return nil, err
	}
	cl, err := r.Store.GetClient(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fromStore(err)
	}
	return newClientResolver(cl), nil
}

func (r *Resolver) GetClients(ctx context.Context) ([]*ClientResolver, error) {
	clients, err := r.Store.GetClients(ctx)
	if err != nil {
		return nil, fromStore(err)
	}
	out := make([]*ClientResolver, 0, len(clients))
	for i := range clients {
		out = append(out, newClientResolver(&clients[i]))
	}
	return out, nil
}

func (r *Resolver) GetDay(ctx context.Context, args struct {
	SpecialistID graphql.ID
	Date         string
}) (*DayResolver, error) {
	id, err := parseID(args.SpecialistID)
	if err != nil {
		return nil, err
	}
	day, err := r.Store.GetDay(ctx, id, args.Date)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fromStore(err)
	}
	return &DayResolver{d: day}, nil
}

// Me resolves the authenticated caller, or null for anonymous requests.
func (r *Resolver) Me(ctx context.Context) (*UserResolver, error) {
	v, ok := ViewerFrom(ctx)
	if !ok {
		return nil, nil
	}
	acct, err := r.Store.GetAccount(ctx, v.Role, v.ID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fromStore(err)
	}
	return newUserResolver(acct.ID, acct.AccountFields), nil
}
