package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/anylist-api/internal/application/dto"
	"github.com/jhoicas/anylist-api/internal/domain"
	"github.com/jhoicas/anylist-api/internal/domain/entity"
	"github.com/jhoicas/anylist-api/internal/domain/repository"
	"github.com/jhoicas/anylist-api/pkg/logger"
)

// ItemUseCase casos de uso CRUD para items.
type ItemUseCase struct {
	repo repository.ItemRepository
	tx   repository.TxRunner
	log  *logger.Logger
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository, tx repository.TxRunner, log *logger.Logger) *ItemUseCase {
	return &ItemUseCase{repo: repo, tx: tx, log: log.Named("items")}
}

// Create crea un item. Si owner no es nil queda como dueño.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemInput, owner *entity.User) (*entity.Item, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	item := &entity.Item{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Quantity:  decimal.NewFromFloat(in.Quantity),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if owner != nil {
		ownerID := owner.ID
		item.UserID = &ownerID
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, handleDBError(uc.log, "create item", err)
	}
	return item, nil
}

// FindAll devuelve todos los items, sin filtro ni paginación.
func (uc *ItemUseCase) FindAll(ctx context.Context) ([]*entity.Item, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, handleDBError(uc.log, "list items", err)
	}
	return items, nil
}

// FindOne obtiene un item por ID o NotFound.
func (uc *ItemUseCase) FindOne(ctx context.Context, id string) (*entity.Item, error) {
	id, ok := canonicalID(id)
	if !ok {
		return nil, itemNotFound(id)
	}
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, handleDBError(uc.log, "get item", err)
	}
	if item == nil {
		return nil, itemNotFound(id)
	}
	return item, nil
}

// Update carga el item (con lock), superpone solo los campos presentes en in y guarda.
// Si el item no existe devuelve NotFound sin escribir nada.
func (uc *ItemUseCase) Update(ctx context.Context, id string, in dto.UpdateItemInput) (*entity.Item, error) {
	id, ok := canonicalID(id)
	if !ok {
		return nil, itemNotFound(id)
	}
	in.ID = id
	if in.Name != nil {
		trimmed := strings.TrimSpace(*in.Name)
		in.Name = &trimmed
	}
	if err := dto.Validate(in); err != nil {
		return nil, err
	}

	var out *entity.Item
	err := uc.tx.Run(ctx, func(items repository.ItemRepository, _ repository.UserRepository) error {
		item, err := items.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if item == nil {
			return itemNotFound(id)
		}
		if in.Name != nil {
			item.Name = *in.Name
		}
		if in.Quantity != nil {
			item.Quantity = decimal.NewFromFloat(*in.Quantity)
		}
		if err := dto.Validate(dto.CreateItemInput{Name: item.Name, Quantity: item.Quantity.InexactFloat64()}); err != nil {
			return err
		}
		item.UpdatedAt = time.Now().UTC()
		if err := items.Update(ctx, item); err != nil {
			return err
		}
		out = item
		return nil
	})
	if err != nil {
		return nil, handleDBError(uc.log, "update item", err)
	}
	return out, nil
}

// Remove elimina el item y devuelve su último estado (incluido el id).
func (uc *ItemUseCase) Remove(ctx context.Context, id string) (*entity.Item, error) {
	id, ok := canonicalID(id)
	if !ok {
		return nil, itemNotFound(id)
	}
	var out *entity.Item
	err := uc.tx.Run(ctx, func(items repository.ItemRepository, _ repository.UserRepository) error {
		item, err := items.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if item == nil {
			return itemNotFound(id)
		}
		if err := items.Delete(ctx, id); err != nil {
			return err
		}
		out = item
		return nil
	})
	if err != nil {
		return nil, handleDBError(uc.log, "remove item", err)
	}
	return out, nil
}

func itemNotFound(id string) error {
	return domain.NotFound("Item with id %s not found", id)
}
