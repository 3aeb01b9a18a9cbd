package auth

import (
	"context"

	"github.com/jhoicas/anylist-api/internal/application/dto"
	"github.com/jhoicas/anylist-api/internal/application/usecase"
	"github.com/jhoicas/anylist-api/internal/domain"
	"github.com/jhoicas/anylist-api/internal/domain/entity"
	"github.com/jhoicas/anylist-api/pkg/jwt"
	"github.com/jhoicas/anylist-api/pkg/logger"
	"github.com/jhoicas/anylist-api/pkg/password"
)

const (
	msgBadCredentials = "Email/Password do not match"
	msgInactive       = "User is inactive, talk with an admin"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y revalidación.
type AuthUseCase struct {
	users  *usecase.UserUseCase
	jwtCfg JWTConfig
	log    *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users *usecase.UserUseCase, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{users: users, jwtCfg: jwtCfg, log: log.Named("auth")}
}

// Signup registra el usuario (siempre con rol user) y devuelve token + usuario.
func (uc *AuthUseCase) Signup(ctx context.Context, in dto.SignupInput) (*dto.AuthResponse, error) {
	in.Roles = nil
	user, err := uc.users.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	return uc.respond(user)
}

// Login verifica email/password. Email inexistente y password incorrecto dan el mismo error.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginInput) (*dto.AuthResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	user, err := uc.users.FindOneByEmail(ctx, in.Email)
	if err != nil {
		if domain.KindOf(err) == domain.KindNotFound {
			return nil, domain.Unauthorized(msgBadCredentials)
		}
		return nil, err
	}
	if !password.Compare(user.PasswordHash, in.Password) {
		return nil, domain.Unauthorized(msgBadCredentials)
	}
	if !user.IsActive {
		return nil, domain.Unauthorized(msgInactive)
	}
	return uc.respond(user)
}

// Revalidate emite un token nuevo para el usuario ya autenticado.
func (uc *AuthUseCase) Revalidate(_ context.Context, user *entity.User) (*dto.AuthResponse, error) {
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.respond(user)
}

// ValidateUser carga el usuario dueño del token. Inexistente o inactivo => Unauthorized.
func (uc *AuthUseCase) ValidateUser(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.users.FindOneByID(ctx, id)
	if err != nil {
		if domain.KindOf(err) == domain.KindNotFound {
			return nil, domain.Unauthorized("Token not valid")
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, domain.Unauthorized(msgInactive)
	}
	return user, nil
}

// ParseToken valida firma y expiración y devuelve el id de usuario del token.
func (uc *AuthUseCase) ParseToken(token string) (string, error) {
	userID, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return "", domain.Unauthorized("Token not valid")
	}
	return userID, nil
}

func (uc *AuthUseCase) respond(user *entity.User) (*dto.AuthResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Roles, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		uc.log.Error().Err(err).Str("user_id", user.ID).Msg("no se pudo firmar el token")
		return nil, domain.Internal(err)
	}
	return &dto.AuthResponse{Token: token, User: user}, nil
}
