// Package memory implementa los puertos de persistencia en memoria (DB_DRIVER=memory y tests).
// Replica las reglas que en PostgreSQL imponen las constraints: email único y roles no vacíos.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/jhoicas/anylist-api/internal/domain"
	"github.com/jhoicas/anylist-api/internal/domain/entity"
	"github.com/jhoicas/anylist-api/internal/domain/repository"
)

var (
	_ repository.ItemRepository = (*ItemRepo)(nil)
	_ repository.UserRepository = (*UserRepo)(nil)
	_ repository.TxRunner       = (*Store)(nil)
)

// Store guarda items y usuarios. Todas las operaciones se serializan con mu;
// Run mantiene el lock durante todo el callback, lo que equivale a una transacción serializable.
type Store struct {
	mu    sync.Mutex
	items map[string]*entity.Item
	users map[string]*entity.User

	// FailWith, si no es nil, hace fallar la siguiente escritura (simula fallas del motor en tests).
	FailWith error
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		items: make(map[string]*entity.Item),
		users: make(map[string]*entity.User),
	}
}

// Items devuelve el repositorio de items (fuera de transacción).
func (s *Store) Items() *ItemRepo { return &ItemRepo{s: s, locked: false} }

// Users devuelve el repositorio de usuarios (fuera de transacción).
func (s *Store) Users() *UserRepo { return &UserRepo{s: s, locked: false} }

// Run ejecuta fn con el lock tomado; si fn falla se restaura el estado previo.
func (s *Store) Run(ctx context.Context, fn func(items repository.ItemRepository, users repository.UserRepository) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	itemsSnap := cloneItems(s.items)
	usersSnap := cloneUsers(s.users)
	if err := fn(&ItemRepo{s: s, locked: true}, &UserRepo{s: s, locked: true}); err != nil {
		s.items, s.users = itemsSnap, usersSnap
		return err
	}
	return nil
}

func (s *Store) lock(locked bool) func() {
	if locked {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *Store) takeFailure() error {
	err := s.FailWith
	s.FailWith = nil
	return err
}

// ItemRepo implementación en memoria de ItemRepository.
type ItemRepo struct {
	s      *Store
	locked bool
}

func (r *ItemRepo) Create(_ context.Context, item *entity.Item) error {
	defer r.s.lock(r.locked)()
	if err := r.s.takeFailure(); err != nil {
		return err
	}
	if _, ok := r.s.items[item.ID]; ok {
		return domain.Validation(fmt.Sprintf("(id)=(%s) already exists.", item.ID))
	}
	if item.UserID != nil {
		if _, ok := r.s.users[*item.UserID]; !ok {
			return fmt.Errorf("insert item: user %s not present", *item.UserID)
		}
	}
	r.s.items[item.ID] = item.Clone()
	return nil
}

func (r *ItemRepo) GetByID(_ context.Context, id string) (*entity.Item, error) {
	defer r.s.lock(r.locked)()
	it, ok := r.s.items[id]
	if !ok {
		return nil, nil
	}
	return it.Clone(), nil
}

func (r *ItemRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Item, error) {
	return r.GetByID(ctx, id)
}

func (r *ItemRepo) List(_ context.Context) ([]*entity.Item, error) {
	defer r.s.lock(r.locked)()
	list := make([]*entity.Item, 0, len(r.s.items))
	for _, it := range r.s.items {
		list = append(list, it.Clone())
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].ID < list[j].ID
		}
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}

func (r *ItemRepo) Update(_ context.Context, item *entity.Item) error {
	defer r.s.lock(r.locked)()
	if err := r.s.takeFailure(); err != nil {
		return err
	}
	if _, ok := r.s.items[item.ID]; ok {
		r.s.items[item.ID] = item.Clone()
	}
	return nil
}

func (r *ItemRepo) Delete(_ context.Context, id string) error {
	defer r.s.lock(r.locked)()
	if err := r.s.takeFailure(); err != nil {
		return err
	}
	delete(r.s.items, id)
	return nil
}

// UserRepo implementación en memoria de UserRepository.
type UserRepo struct {
	s      *Store
	locked bool
}

func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	defer r.s.lock(r.locked)()
	if err := r.s.takeFailure(); err != nil {
		return err
	}
	if err := r.checkConstraints(user); err != nil {
		return err
	}
	r.s.users[user.ID] = user.Clone()
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	defer r.s.lock(r.locked)()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return u.Clone(), nil
}

func (r *UserRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.User, error) {
	return r.GetByID(ctx, id)
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	defer r.s.lock(r.locked)()
	for _, u := range r.s.users {
		if u.Email == email {
			return u.Clone(), nil
		}
	}
	return nil, nil
}

func (r *UserRepo) List(_ context.Context) ([]*entity.User, error) {
	defer r.s.lock(r.locked)()
	return r.filter(nil), nil
}

func (r *UserRepo) ListByRoles(_ context.Context, roles []string) ([]*entity.User, error) {
	defer r.s.lock(r.locked)()
	return r.filter(func(u *entity.User) bool { return u.HasAnyRole(roles...) }), nil
}

func (r *UserRepo) filter(keep func(*entity.User) bool) []*entity.User {
	list := make([]*entity.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		if keep == nil || keep(u) {
			list = append(list, u.Clone())
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].ID < list[j].ID
		}
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
	return list
}

func (r *UserRepo) Update(_ context.Context, user *entity.User) error {
	defer r.s.lock(r.locked)()
	if err := r.s.takeFailure(); err != nil {
		return err
	}
	if _, ok := r.s.users[user.ID]; !ok {
		return nil
	}
	if err := r.checkConstraints(user); err != nil {
		return err
	}
	r.s.users[user.ID] = user.Clone()
	return nil
}

// checkConstraints replica users_email_key y users_roles_not_empty.
func (r *UserRepo) checkConstraints(user *entity.User) error {
	for id, u := range r.s.users {
		if id != user.ID && u.Email == user.Email {
			return domain.Validation(fmt.Sprintf("(email)=(%s) already exists.", user.Email))
		}
	}
	if len(user.Roles) == 0 {
		return fmt.Errorf("users_roles_not_empty violated for %s", user.ID)
	}
	if user.LastUpdateByID != nil {
		if _, ok := r.s.users[*user.LastUpdateByID]; !ok && *user.LastUpdateByID != user.ID {
			return fmt.Errorf("last_update_by %s not present", *user.LastUpdateByID)
		}
	}
	return nil
}

func cloneItems(in map[string]*entity.Item) map[string]*entity.Item {
	out := make(map[string]*entity.Item, len(in))
	for k, v := range in {
		out[k] = v.Clone()
	}
	return out
}

func cloneUsers(in map[string]*entity.User) map[string]*entity.User {
	out := make(map[string]*entity.User, len(in))
	for k, v := range in {
		out[k] = v.Clone()
	}
	return out
}
