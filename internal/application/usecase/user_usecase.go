package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/anylist-api/internal/application/dto"
	"github.com/jhoicas/anylist-api/internal/domain"
	"github.com/jhoicas/anylist-api/internal/domain/entity"
	"github.com/jhoicas/anylist-api/internal/domain/repository"
	"github.com/jhoicas/anylist-api/pkg/logger"
	"github.com/jhoicas/anylist-api/pkg/password"
)

// UserUseCase aplica reglas de negocio para usuarios.
type UserUseCase struct {
	repo repository.UserRepository
	tx   repository.TxRunner
	log  *logger.Logger
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository, tx repository.TxRunner, log *logger.Logger) *UserUseCase {
	return &UserUseCase{repo: repo, tx: tx, log: log.Named("users")}
}

// Create registra un usuario: hashea el password (bcrypt, costo fijo) y persiste.
// Un email repetido devuelve Validation; cualquier otra falla de persistencia, Internal.
func (uc *UserUseCase) Create(ctx context.Context, in dto.SignupInput) (*entity.User, error) {
	in.Email = normalizeEmail(in.Email)
	in.FullName = normalizeName(in.FullName)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, handleDBError(uc.log, "hash password", err)
	}
	roles := uniqueRoles(in.Roles)
	if len(roles) == 0 {
		roles = []string{entity.RoleUser}
	}
	now := time.Now().UTC()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		FullName:     in.FullName,
		PasswordHash: hash,
		Roles:        roles,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, handleDBError(uc.log, "create user", err)
	}
	return user, nil
}

// FindAll sin roles devuelve todos los usuarios; con roles, los que tengan al menos uno de ellos.
func (uc *UserUseCase) FindAll(ctx context.Context, roles []string) ([]*entity.User, error) {
	var (
		users []*entity.User
		err   error
	)
	if len(roles) == 0 {
		users, err = uc.repo.List(ctx)
	} else {
		for _, r := range roles {
			if !entity.IsValidRole(r) {
				return nil, domain.Validation("roles must be one of the following values: admin, user, superUser")
			}
		}
		users, err = uc.repo.ListByRoles(ctx, uniqueRoles(roles))
	}
	if err != nil {
		return nil, handleDBError(uc.log, "list users", err)
	}
	return users, nil
}

// FindOneByEmail obtiene un usuario por email o NotFound.
func (uc *UserUseCase) FindOneByEmail(ctx context.Context, email string) (*entity.User, error) {
	email = normalizeEmail(email)
	user, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, handleDBError(uc.log, "get user by email", err)
	}
	if user == nil {
		return nil, domain.NotFound("%s not found", email)
	}
	return user, nil
}

// FindOneByID obtiene un usuario por ID o NotFound.
func (uc *UserUseCase) FindOneByID(ctx context.Context, id string) (*entity.User, error) {
	id, ok := canonicalID(id)
	if !ok {
		return nil, userNotFound(id)
	}
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, handleDBError(uc.log, "get user", err)
	}
	if user == nil {
		return nil, userNotFound(id)
	}
	return user, nil
}

// Update superpone los campos presentes en in, marca lastUpdateBy con updatedBy y guarda.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserInput, updatedBy *entity.User) (*entity.User, error) {
	if updatedBy == nil {
		return nil, domain.ErrUnauthorized
	}
	id, ok := canonicalID(id)
	if !ok {
		return nil, userNotFound(id)
	}
	in.ID = id
	if in.Email != nil {
		e := normalizeEmail(*in.Email)
		in.Email = &e
	}
	if in.FullName != nil {
		n := normalizeName(*in.FullName)
		in.FullName = &n
	}
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if in.Roles != nil && len(in.Roles) == 0 {
		return nil, domain.Validation("roles must contain at least 1 elements")
	}
	if in.FullName != nil && *in.FullName == "" {
		return nil, domain.Validation("fullName should not be empty")
	}
	var hash string
	if in.Password != nil {
		h, err := password.Hash(*in.Password)
		if err != nil {
			return nil, handleDBError(uc.log, "hash password", err)
		}
		hash = h
	}

	var out *entity.User
	err := uc.tx.Run(ctx, func(_ repository.ItemRepository, users repository.UserRepository) error {
		user, err := users.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if user == nil {
			return userNotFound(id)
		}
		if in.Email != nil {
			user.Email = *in.Email
		}
		if in.FullName != nil {
			user.FullName = *in.FullName
		}
		if hash != "" {
			user.PasswordHash = hash
		}
		if in.Roles != nil {
			user.Roles = uniqueRoles(in.Roles)
		}
		if in.IsActive != nil {
			user.IsActive = *in.IsActive
		}
		stampUpdate(user, updatedBy)
		if err := users.Update(ctx, user); err != nil {
			return err
		}
		out = user
		return nil
	})
	if err != nil {
		return nil, handleDBError(uc.log, "update user", err)
	}
	return out, nil
}

// Block desactiva al usuario (isActive=false) dejando a adminUser como lastUpdateBy.
func (uc *UserUseCase) Block(ctx context.Context, id string, adminUser *entity.User) (*entity.User, error) {
	if adminUser == nil {
		return nil, domain.ErrUnauthorized
	}
	id, ok := canonicalID(id)
	if !ok {
		return nil, userNotFound(id)
	}
	var out *entity.User
	err := uc.tx.Run(ctx, func(_ repository.ItemRepository, users repository.UserRepository) error {
		user, err := users.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if user == nil {
			return userNotFound(id)
		}
		user.IsActive = false
		stampUpdate(user, adminUser)
		if err := users.Update(ctx, user); err != nil {
			return err
		}
		out = user
		return nil
	})
	if err != nil {
		return nil, handleDBError(uc.log, "block user", err)
	}
	return out, nil
}

func stampUpdate(user, by *entity.User) {
	byID := by.ID
	user.LastUpdateByID = &byID
	user.UpdatedAt = time.Now().UTC()
}

func uniqueRoles(roles []string) []string {
	if roles == nil {
		return nil
	}
	out := make([]string, 0, len(roles))
	seen := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}

func userNotFound(id string) error {
	return domain.NotFound("User %s not found", id)
}
