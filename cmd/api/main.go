package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/anylist-api/internal/application/auth"
	"github.com/jhoicas/anylist-api/internal/application/usecase"
	"github.com/jhoicas/anylist-api/internal/domain/repository"
	"github.com/jhoicas/anylist-api/internal/infrastructure/memory"
	"github.com/jhoicas/anylist-api/internal/infrastructure/metrics"
	"github.com/jhoicas/anylist-api/internal/infrastructure/postgres"
	apigql "github.com/jhoicas/anylist-api/internal/interfaces/graphql"
	httpRouter "github.com/jhoicas/anylist-api/internal/interfaces/http"
	"github.com/jhoicas/anylist-api/pkg/config"
	"github.com/jhoicas/anylist-api/pkg/logger"
)

// storage agrupa los puertos de persistencia del driver elegido.
type storage struct {
	items repository.ItemRepository
	users repository.UserRepository
	tx    repository.TxRunner
	close func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar persistencia")
	}
	defer store.close()

	itemUC := usecase.NewItemUseCase(store.items, store.tx, log)
	userUC := usecase.NewUserUseCase(store.users, store.tx, log)
	authUC := auth.NewAuthUseCase(userUC, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)

	schema, err := apigql.NewSchema(
		apigql.NewResolver(itemUC, userUC, authUC),
		apigql.SchemaConfig{MaxDepth: cfg.GraphQL.MaxDepth},
		log,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("schema GraphQL")
	}

	app := httpRouter.NewApp(httpRouter.RouterDeps{
		AppName:     cfg.App.Name,
		Auth:        authUC,
		AuthHandler: httpRouter.NewAuthHandler(authUC),
		Schema:      schema,
		Metrics:     metrics.New(),
		Logger:      log,
		GraphQL:     cfg.GraphQL,
		SwaggerFile: cfg.Docs.SwaggerFile,
	})

	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr()).Str("graphql", cfg.GraphQL.Path).Bool("playground", cfg.GraphQL.Playground).Msg("servidor HTTP escuchando")
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// openStorage conecta el driver configurado; con postgres aplica migraciones si DB_AUTO_MIGRATE=true.
func openStorage(ctx context.Context, cfg *config.Config, log *logger.Logger) (*storage, error) {
	switch cfg.DB.Driver {
	case config.DriverMemory:
		log.Warn().Msg("DB_DRIVER=memory: los datos se pierden al reiniciar")
		s := memory.NewStore()
		return &storage{items: s.Items(), users: s.Users(), tx: s, close: func() {}}, nil
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		if cfg.DB.AutoMigrate {
			applied, err := postgres.Migrate(ctx, pool)
			if err != nil {
				pool.Close()
				return nil, fmt.Errorf("migraciones: %w", err)
			}
			log.Info().Strs("applied", applied).Msg("migraciones aplicadas")
		}
		return &storage{
			items: postgres.NewItemRepository(pool),
			users: postgres.NewUserRepository(pool),
			tx:    postgres.NewTxRunner(pool),
			close: pool.Close,
		}, nil
	default:
		return nil, fmt.Errorf("DB_DRIVER desconocido: %q", cfg.DB.Driver)
	}
}
