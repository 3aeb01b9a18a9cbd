package graphql

import (
	"context"

	graphqlgo "github.com/graph-gophers/graphql-go"

	"github.com/jhoicas/anylist-api/internal/application/dto"
	"github.com/jhoicas/anylist-api/internal/application/usecase"
	"github.com/jhoicas/anylist-api/internal/domain/entity"
)

type itemResolver struct {
	item  *entity.Item
	users *usecase.UserUseCase
}

func (r *itemResolver) ID() graphqlgo.ID { return graphqlgo.ID(r.item.ID) }
func (r *itemResolver) Name() string     { return r.item.Name }
func (r *itemResolver) Quantity() float64 {
	return r.item.Quantity.InexactFloat64()
}

// User resuelve el dueño bajo demanda.
func (r *itemResolver) User(ctx context.Context) (*userResolver, error) {
	if r.item.UserID == nil {
		return nil, nil
	}
	return loadUser(ctx, r.users, *r.item.UserID)
}

type createItemInput struct {
	Name     string
	Quantity float64
}

type updateItemInput struct {
	ID       graphqlgo.ID
	Name     *string
	Quantity *float64
}

func (r *Resolver) Items(ctx context.Context) ([]*itemResolver, error) {
	if _, err := requireUser(ctx); err != nil {
		return nil, err
	}
	items, err := r.items.FindAll(ctx)
	if err != nil {
		return nil, toGQLError(err)
	}
	out := make([]*itemResolver, 0, len(items))
	for _, it := range items {
		out = append(out, r.wrapItem(it))
	}
	return out, nil
}

func (r *Resolver) Item(ctx context.Context, args struct{ ID graphqlgo.ID }) (*itemResolver, error) {
	if _, err := requireUser(ctx); err != nil {
		return nil, err
	}
	id, err := parseID(args.ID)
	if err != nil {
		return nil, err
	}
	it, err := r.items.FindOne(ctx, id)
	if err != nil {
		return nil, toGQLError(err)
	}
	return r.wrapItem(it), nil
}

func (r *Resolver) CreateItem(ctx context.Context, args struct{ CreateItemInput createItemInput }) (*itemResolver, error) {
	user, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	in := dto.CreateItemInput{Name: args.CreateItemInput.Name, Quantity: args.CreateItemInput.Quantity}
	it, err := r.items.Create(ctx, in, user)
	if err != nil {
		return nil, toGQLError(err)
	}
	return r.wrapItem(it), nil
}

func (r *Resolver) UpdateItem(ctx context.Context, args struct{ UpdateItemInput updateItemInput }) (*itemResolver, error) {
	if _, err := requireUser(ctx); err != nil {
		return nil, err
	}
	id, err := parseID(args.UpdateItemInput.ID)
	if err != nil {
		return nil, err
	}
	in := dto.UpdateItemInput{ID: id, Name: args.UpdateItemInput.Name, Quantity: args.UpdateItemInput.Quantity}
	it, err := r.items.Update(ctx, id, in)
	if err != nil {
		return nil, toGQLError(err)
	}
	return r.wrapItem(it), nil
}

func (r *Resolver) RemoveItem(ctx context.Context, args struct{ ID graphqlgo.ID }) (*itemResolver, error) {
	if _, err := requireUser(ctx); err != nil {
		return nil, err
	}
	id, err := parseID(args.ID)
	if err != nil {
		return nil, err
	}
	it, err := r.items.Remove(ctx, id)
	if err != nil {
		return nil, toGQLError(err)
	}
	return r.wrapItem(it), nil
}

func (r *Resolver) wrapItem(it *entity.Item) *itemResolver {
	return &itemResolver{item: it, users: r.users}
}
