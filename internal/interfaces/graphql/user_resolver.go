package graphql

import (
	"context"

	graphqlgo "github.com/graph-gophers/graphql-go"

	"github.com/jhoicas/anylist-api/internal/application/dto"
	"github.com/jhoicas/anylist-api/internal/application/usecase"
	"github.com/jhoicas/anylist-api/internal/domain"
	"github.com/jhoicas/anylist-api/internal/domain/entity"
)

type userResolver struct {
	user  *entity.User
	users *usecase.UserUseCase
}

func (r *userResolver) ID() graphqlgo.ID { return graphqlgo.ID(r.user.ID) }
func (r *userResolver) FullName() string { return r.user.FullName }
func (r *userResolver) Email() string    { return r.user.Email }
func (r *userResolver) Roles() []string  { return r.user.Roles }
func (r *userResolver) IsActive() bool   { return r.user.IsActive }

// LastUpdateBy resuelve el puntero de auditoría bajo demanda.
func (r *userResolver) LastUpdateBy(ctx context.Context) (*userResolver, error) {
	if r.user.LastUpdateByID == nil {
		return nil, nil
	}
	return loadUser(ctx, r.users, *r.user.LastUpdateByID)
}

// loadUser carga una referencia opcional; si ya no existe se resuelve como null.
func loadUser(ctx context.Context, users *usecase.UserUseCase, id string) (*userResolver, error) {
	u, err := users.FindOneByID(ctx, id)
	if err != nil {
		if domain.KindOf(err) == domain.KindNotFound {
			return nil, nil
		}
		return nil, toGQLError(err)
	}
	return &userResolver{user: u, users: users}, nil
}

type updateUserInput struct {
	ID       graphqlgo.ID
	Email    *string
	FullName *string
	Password *string
	Roles    *[]string
	IsActive *bool
}

func (r *Resolver) Users(ctx context.Context, args struct{ Roles []string }) ([]*userResolver, error) {
	if _, err := requireRoles(ctx, entity.RoleAdmin, entity.RoleSuperUser); err != nil {
		return nil, err
	}
	list, err := r.users.FindAll(ctx, args.Roles)
	if err != nil {
		return nil, toGQLError(err)
	}
	out := make([]*userResolver, 0, len(list))
	for _, u := range list {
		out = append(out, r.wrapUser(u))
	}
	return out, nil
}

func (r *Resolver) User(ctx context.Context, args struct{ ID graphqlgo.ID }) (*userResolver, error) {
	if _, err := requireRoles(ctx, entity.RoleAdmin, entity.RoleSuperUser); err != nil {
		return nil, err
	}
	id, err := parseID(args.ID)
	if err != nil {
		return nil, err
	}
	u, err := r.users.FindOneByID(ctx, id)
	if err != nil {
		return nil, toGQLError(err)
	}
	return r.wrapUser(u), nil
}

func (r *Resolver) UpdateUser(ctx context.Context, args struct{ UpdateUserInput updateUserInput }) (*userResolver, error) {
	admin, err := requireRoles(ctx, entity.RoleAdmin)
	if err != nil {
		return nil, err
	}
	in := args.UpdateUserInput
	id, err := parseID(in.ID)
	if err != nil {
		return nil, err
	}
	upd := dto.UpdateUserInput{
		ID:       id,
		Email:    in.Email,
		FullName: in.FullName,
		Password: in.Password,
		IsActive: in.IsActive,
	}
	if in.Roles != nil {
		upd.Roles = append([]string{}, *in.Roles...)
	}
	u, err := r.users.Update(ctx, id, upd, admin)
	if err != nil {
		return nil, toGQLError(err)
	}
	return r.wrapUser(u), nil
}

func (r *Resolver) BlockUser(ctx context.Context, args struct{ ID graphqlgo.ID }) (*userResolver, error) {
	admin, err := requireRoles(ctx, entity.RoleAdmin)
	if err != nil {
		return nil, err
	}
	id, err := parseID(args.ID)
	if err != nil {
		return nil, err
	}
	u, err := r.users.Block(ctx, id, admin)
	if err != nil {
		return nil, toGQLError(err)
	}
	return r.wrapUser(u), nil
}

func (r *Resolver) wrapUser(u *entity.User) *userResolver {
	return &userResolver{user: u, users: r.users}
}
