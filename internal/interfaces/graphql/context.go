package graphql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/anylist-api/internal/domain"
	"github.com/jhoicas/anylist-api/internal/domain/entity"
)

type ctxKey struct{}

// WithUser guarda el usuario autenticado en el contexto de la petición.
func WithUser(ctx context.Context, user *entity.User) context.Context {
	return context.WithValue(ctx, ctxKey{}, user)
}

// UserFromContext devuelve el usuario autenticado o nil si la petición es anónima.
func UserFromContext(ctx context.Context) *entity.User {
	u, _ := ctx.Value(ctxKey{}).(*entity.User)
	return u
}

func requireUser(ctx context.Context) (*entity.User, error) {
	user := UserFromContext(ctx)
	if user == nil {
		return nil, toGQLError(domain.ErrUnauthorized)
	}
	return user, nil
}

// requireRoles exige al menos uno de los roles indicados.
func requireRoles(ctx context.Context, roles ...string) (*entity.User, error) {
	user, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if !user.HasAnyRole(roles...) {
		msg := fmt.Sprintf("User %s need a valid role: [%s]", user.FullName, strings.Join(roles, ","))
		return nil, toGQLError(domain.Forbidden(msg))
	}
	return user, nil
}
