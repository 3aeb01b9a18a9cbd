package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/anylist-api/internal/application/dto"
)

// RequireAuth corta con 401 las peticiones anónimas. Debe usarse DESPUÉS de AuthMiddleware.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetUser(c) == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "Unauthorized",
			})
		}
		return c.Next()
	}
}
