package repository

import (
	"context"

	"github.com/jhoicas/anylist-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los Get devuelven (nil, nil) cuando no existe la fila.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByIDForUpdate(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	// ListByRoles devuelve los usuarios cuyo conjunto de roles intersecta con roles.
	ListByRoles(ctx context.Context, roles []string) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
}
