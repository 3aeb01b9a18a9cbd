package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/anylist-api/internal/application/dto"
	"github.com/jhoicas/anylist-api/internal/domain"
	"github.com/jhoicas/anylist-api/internal/domain/entity"
)

// authenticator es lo que el handler REST necesita de *auth.AuthUseCase.
type authenticator interface {
	Signup(ctx context.Context, in dto.SignupInput) (*dto.AuthResponse, error)
	Login(ctx context.Context, in dto.LoginInput) (*dto.AuthResponse, error)
	Revalidate(ctx context.Context, user *entity.User) (*dto.AuthResponse, error)
}

// AuthHandler expone signup, login y revalidate también por REST, con la misma lógica que GraphQL.
type AuthHandler struct {
	uc authenticator
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc authenticator) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Signup godoc
// @Summary      Registrar usuario (rol user)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignupInput  true  "email, fullName, password"
// @Success      201   {object}  dto.AuthResponseJSON
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var in dto.SignupInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Signup(c.UserContext(), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out.JSON())
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginInput  true  "email, password"
// @Success      200   {object}  dto.AuthResponseJSON
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out.JSON())
}

// Revalidate renueva el token del usuario autenticado. Va detrás de RequireAuth.
func (h *AuthHandler) Revalidate(c *fiber.Ctx) error {
	out, err := h.uc.Revalidate(c.UserContext(), GetUser(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out.JSON())
}

// writeDomainError traduce el Kind del error a status HTTP y ErrorResponse.
func writeDomainError(c *fiber.Ctx, err error) error {
	switch domain.KindOf(err) {
	case domain.KindValidation:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_REQUEST", Message: err.Error()})
	case domain.KindNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case domain.KindUnauthorized:
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: err.Error()})
	case domain.KindForbidden:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL_SERVER_ERROR", Message: domain.InternalMessage})
	}
}
