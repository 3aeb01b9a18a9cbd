package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin     = "admin"
	RoleUser      = "user"
	RoleSuperUser = "superUser"
)

// ValidRoles lista en orden los roles aceptados.
var ValidRoles = []string{RoleAdmin, RoleUser, RoleSuperUser}

// IsValidRole indica si r es uno de los roles conocidos.
func IsValidRole(r string) bool {
	for _, v := range ValidRoles {
		if v == r {
			return true
		}
	}
	return false
}

// User representa un usuario del sistema.
// LastUpdateByID es un puntero de auditoría: quién hizo la última modificación, no un dueño.
type User struct {
	ID             string
	Email          string
	FullName       string
	PasswordHash   string // bcrypt hash, nunca plano después de persistir
	Roles          []string
	IsActive       bool
	LastUpdateByID *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HasAnyRole indica si los roles del usuario intersectan con roles.
func (u *User) HasAnyRole(roles ...string) bool {
	for _, want := range roles {
		for _, have := range u.Roles {
			if have == want {
				return true
			}
		}
	}
	return false
}

// Clone devuelve una copia sin memoria compartida.
func (u *User) Clone() *User {
	c := *u
	c.Roles = append([]string(nil), u.Roles...)
	if u.LastUpdateByID != nil {
		id := *u.LastUpdateByID
		c.LastUpdateByID = &id
	}
	return &c
}
