package repository

import (
	"context"

	"github.com/jhoicas/anylist-api/internal/domain/entity"
)

// ItemRepository define el puerto de persistencia para Item (DIP).
// Los Get devuelven (nil, nil) cuando no existe la fila.
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id string) (*entity.Item, error)
	// GetByIDForUpdate bloquea la fila hasta el fin de la transacción en curso.
	GetByIDForUpdate(ctx context.Context, id string) (*entity.Item, error)
	List(ctx context.Context) ([]*entity.Item, error)
	Update(ctx context.Context, item *entity.Item) error
	Delete(ctx context.Context, id string) error
}
