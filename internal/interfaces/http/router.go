package http

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/utils"
	graphqlgo "github.com/graph-gophers/graphql-go"

	"github.com/jhoicas/anylist-api/internal/application/dto"
	"github.com/jhoicas/anylist-api/internal/domain"
	"github.com/jhoicas/anylist-api/internal/infrastructure/metrics"
	apigql "github.com/jhoicas/anylist-api/internal/interfaces/graphql"
	"github.com/jhoicas/anylist-api/pkg/config"
	"github.com/jhoicas/anylist-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName     string
	Auth        tokenValidator
	AuthHandler *AuthHandler
	Schema      *graphqlgo.Schema
	Metrics     *metrics.Metrics
	Logger      *logger.Logger
	GraphQL     config.GraphQLConfig
	SwaggerFile string
}

// NewApp crea la aplicación Fiber con los middlewares globales y registra las rutas.
func NewApp(deps RouterDeps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      deps.AppName,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: deps.GraphQL.Timeout + time.Second*5,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: errorHandler,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(AccessLog(deps.Logger))

	Router(app, deps)
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics.Handler()))
	}

	// Swagger UI: http://localhost:<port>/docs
	if deps.SwaggerFile != "" {
		if _, err := os.Stat(deps.SwaggerFile); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: deps.SwaggerFile,
				Path:     "docs",
				Title:    "Anylist API",
			}))
		} else {
			deps.Logger.Warn().Str("file", deps.SwaggerFile).Msg("swagger.json no encontrado, /docs deshabilitado")
		}
	}

	// REST auth: mismo AuthUseCase que las mutations signup/login y la query revalidate.
	if deps.AuthHandler != nil {
		authGroup := app.Group("/auth")
		authGroup.Post("/signup", deps.AuthHandler.Signup)
		authGroup.Post("/login", deps.AuthHandler.Login)
		authGroup.Get("/revalidate", AuthMiddleware(deps.Auth), RequireAuth(), deps.AuthHandler.Revalidate)
	}

	// GraphQL: autenticación opcional; cada resolver exige lo suyo.
	path := deps.GraphQL.Path
	app.Post(path, AuthMiddleware(deps.Auth), apigql.Handler(deps.Schema, deps.GraphQL.Timeout, deps.Metrics))
	if deps.GraphQL.Playground {
		app.Get(path, adaptor.HTTPHandlerFunc(playground.Handler("Anylist GraphQL", path)))
	}
}

// errorHandler responde los errores de Fiber (404, 405, panics recuperados) con ErrorResponse.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := domain.InternalMessage
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	}
	name := strings.ToUpper(strings.ReplaceAll(utils.StatusMessage(code), " ", "_"))
	return c.Status(code).JSON(dto.ErrorResponse{Code: name, Message: msg})
}
