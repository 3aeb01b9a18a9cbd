package graphql

import (
	"github.com/jhoicas/anylist-api/internal/application/auth"
	"github.com/jhoicas/anylist-api/internal/application/usecase"
)

// Resolver raíz de Query y Mutation.
type Resolver struct {
	items *usecase.ItemUseCase
	users *usecase.UserUseCase
	auth  *auth.AuthUseCase
}

// NewResolver construye el resolver raíz con los casos de uso.
func NewResolver(items *usecase.ItemUseCase, users *usecase.UserUseCase, authUC *auth.AuthUseCase) *Resolver {
	return &Resolver{items: items, users: users, auth: authUC}
}
