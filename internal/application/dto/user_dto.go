package dto

import (
	"time"

	"github.com/jhoicas/anylist-api/internal/domain/entity"
)

// SignupInput entrada para registro (password en texto, se hashea en el use case).
// Roles solo lo usa el seed; por GraphQL siempre llega vacío y se asigna "user".
type SignupInput struct {
	Email    string   `json:"email" validate:"required,email"`
	FullName string   `json:"fullName" validate:"required,max=200"`
	Password string   `json:"password" validate:"required,min=6,pwbytes"`
	Roles    []string `json:"roles" validate:"omitempty,dive,oneof=admin user superUser"`
}

// LoginInput entrada para login.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,pwbytes"`
}

// UpdateUserInput entrada para actualizar un usuario; los campos nil conservan el valor guardado.
type UpdateUserInput struct {
	ID       string   `json:"id" validate:"required,uuid"`
	Email    *string  `json:"email" validate:"omitempty,email"`
	FullName *string  `json:"fullName" validate:"omitempty,max=200"`
	Password *string  `json:"password" validate:"omitempty,min=6,pwbytes"`
	Roles    []string `json:"roles" validate:"omitempty,dive,oneof=admin user superUser"`
	IsActive *bool    `json:"isActive"`
}

// AuthResponse salida de signup/login/revalidate.
type AuthResponse struct {
	Token string
	User  *entity.User
}

// UserResponse vista JSON de un usuario para los endpoints REST (sin password).
type UserResponse struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	FullName       string    `json:"fullName"`
	Roles          []string  `json:"roles"`
	IsActive       bool      `json:"isActive"`
	LastUpdateByID *string   `json:"lastUpdateById,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// AuthResponseJSON cuerpo REST de signup/login/revalidate.
type AuthResponseJSON struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ToUserResponse mapea la entidad a su vista pública.
func ToUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Email:          u.Email,
		FullName:       u.FullName,
		Roles:          u.Roles,
		IsActive:       u.IsActive,
		LastUpdateByID: u.LastUpdateByID,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

// JSON devuelve la forma serializable de la respuesta.
func (r *AuthResponse) JSON() AuthResponseJSON {
	return AuthResponseJSON{Token: r.Token, User: ToUserResponse(r.User)}
}
