package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/anylist-api/internal/application/dto"
	"github.com/jhoicas/anylist-api/internal/domain"
	"github.com/jhoicas/anylist-api/internal/domain/entity"
	apigql "github.com/jhoicas/anylist-api/internal/interfaces/graphql"
)

// LocalUser key de Fiber Locals con el usuario autenticado.
const LocalUser = "user"

// tokenValidator es el contrato mínimo que necesita el middleware para autenticar.
// Lo implementa *auth.AuthUseCase; el uso de interfaz facilita los tests.
type tokenValidator interface {
	ParseToken(token string) (string, error)
	ValidateUser(ctx context.Context, id string) (*entity.User, error)
}

// AuthMiddleware autentica el Bearer Token si viene. Sin header Authorization la petición
// sigue como anónima y cada resolver decide; un token presente pero inválido, expirado, o de
// un usuario inexistente o inactivo responde 401.
func AuthMiddleware(v tokenValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Next()
		}
		scheme, tokenString, _ := strings.Cut(strings.TrimSpace(authHeader), " ")
		if !strings.EqualFold(scheme, "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString = strings.TrimSpace(tokenString)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		userID, err := v.ParseToken(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		user, err := v.ValidateUser(c.UserContext(), userID)
		if err != nil {
			if domain.KindOf(err) == domain.KindUnauthorized {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: err.Error()})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL_SERVER_ERROR", Message: domain.InternalMessage})
		}
		c.Locals(LocalUser, user)
		c.SetUserContext(apigql.WithUser(c.UserContext(), user))
		return c.Next()
	}
}

// GetUser devuelve el usuario autenticado (nil si la petición es anónima).
func GetUser(c *fiber.Ctx) *entity.User {
	u, _ := c.Locals(LocalUser).(*entity.User)
	return u
}
