package graphql

import (
	"context"

	"github.com/jhoicas/anylist-api/internal/application/dto"
)

type authResponseResolver struct {
	res  *dto.AuthResponse
	user *userResolver
}

func (r *authResponseResolver) Token() string       { return r.res.Token }
func (r *authResponseResolver) User() *userResolver { return r.user }

type signupInput struct {
	Email    string
	FullName string
	Password string
}

type loginInput struct {
	Email    string
	Password string
}

func (r *Resolver) Signup(ctx context.Context, args struct{ SignupInput signupInput }) (*authResponseResolver, error) {
	in := args.SignupInput
	res, err := r.auth.Signup(ctx, dto.SignupInput{Email: in.Email, FullName: in.FullName, Password: in.Password})
	if err != nil {
		return nil, toGQLError(err)
	}
	return r.authResponse(res), nil
}

func (r *Resolver) Login(ctx context.Context, args struct{ LoginInput loginInput }) (*authResponseResolver, error) {
	in := args.LoginInput
	res, err := r.auth.Login(ctx, dto.LoginInput{Email: in.Email, Password: in.Password})
	if err != nil {
		return nil, toGQLError(err)
	}
	return r.authResponse(res), nil
}

func (r *Resolver) Revalidate(ctx context.Context) (*authResponseResolver, error) {
	user, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	res, err := r.auth.Revalidate(ctx, user)
	if err != nil {
		return nil, toGQLError(err)
	}
	return r.authResponse(res), nil
}

func (r *Resolver) authResponse(res *dto.AuthResponse) *authResponseResolver {
	return &authResponseResolver{res: res, user: r.wrapUser(res.User)}
}
