package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/anylist-api/internal/application/auth"
	"github.com/jhoicas/anylist-api/internal/application/dto"
	"github.com/jhoicas/anylist-api/internal/application/usecase"
	"github.com/jhoicas/anylist-api/internal/domain/entity"
	"github.com/jhoicas/anylist-api/internal/infrastructure/memory"
	apigql "github.com/jhoicas/anylist-api/internal/interfaces/graphql"
	apphttp "github.com/jhoicas/anylist-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/anylist-api/pkg/jwt"
	"github.com/jhoicas/anylist-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "anylist-test"
	testExpMin    = 60
)

type authEnv struct {
	authUC *auth.AuthUseCase
	users  *usecase.UserUseCase
	store  *memory.Store
}

func newAuthEnv(t *testing.T) *authEnv {
	t.Helper()
	store := memory.NewStore()
	users := usecase.NewUserUseCase(store.Users(), store, logger.Nop())
	authUC := auth.NewAuthUseCase(users, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}, logger.Nop())
	return &authEnv{authUC: authUC, users: users, store: store}
}

func (e *authEnv) signup(t *testing.T, email string, roles ...string) *entity.User {
	t.Helper()
	u, err := e.users.Create(context.Background(), dto.SignupInput{Email: email, FullName: "Usuario", Password: "123456", Roles: roles})
	require.NoError(t, err)
	return u
}

func tokenFor(t *testing.T, userID string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, userID, []string{entity.RoleUser}, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// buildTestApp expone /me detrás del AuthMiddleware y devuelve el usuario visto en
// Locals y en el contexto GraphQL.
func buildTestApp(e *authEnv) *fiber.App {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(e.authUC), func(c *fiber.Ctx) error {
		local := apphttp.GetUser(c)
		fromCtx := apigql.UserFromContext(c.UserContext())
		body := fiber.Map{"anonymous": local == nil}
		if local != nil {
			body["local_id"] = local.ID
		}
		if fromCtx != nil {
			body["ctx_id"] = fromCtx.ID
		}
		return c.JSON(body)
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: token válido de usuario activo → el usuario queda en Locals y en el contexto.
func TestAuthMiddleware_TokenValido(t *testing.T) {
	e := newAuthEnv(t)
	u := e.signup(t, "ana@example.com")
	resp := doRequest(t, buildTestApp(e), tokenFor(t, u.ID))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["anonymous"])
	assert.Equal(t, u.ID, body["local_id"])
	assert.Equal(t, u.ID, body["ctx_id"], "el resolver GraphQL ve el mismo usuario")
}

// Caso 2: sin header Authorization → la petición sigue como anónima.
func TestAuthMiddleware_SinHeader_Anonimo(t *testing.T) {
	e := newAuthEnv(t)
	resp := doRequest(t, buildTestApp(e), "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["anonymous"])
}

func TestAuthMiddleware_Rechazos(t *testing.T) {
	e := newAuthEnv(t)
	blocked := e.signup(t, "bloqueado@example.com")
	admin := e.signup(t, "admin@example.com", entity.RoleAdmin)
	_, err := e.users.Block(context.Background(), blocked.ID, admin)
	require.NoError(t, err)

	expired, err := pkgjwt.Generate(testJWTSecret, admin.ID, nil, testIssuer, -1)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		code   string
	}{
		{"formato inválido", "Token abc", "INVALID_TOKEN"},
		{"bearer sin token", "Bearer ", "MISSING_TOKEN"},
		{"token malformado", "Bearer token.invalido.aqui", "INVALID_TOKEN"},
		{"token expirado", "Bearer " + expired, "INVALID_TOKEN"},
		{"usuario inexistente", tokenFor(t, "6f1c1a7e-2b7a-4c55-9a55-0d3b4c1e9b10"), "INVALID_TOKEN"},
		{"usuario bloqueado", tokenFor(t, blocked.ID), "INVALID_TOKEN"},
	}
	app := buildTestApp(e)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doRequest(t, app, tt.header)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			body, _ := io.ReadAll(resp.Body)
			assert.Contains(t, string(body), tt.code)
		})
	}
}
