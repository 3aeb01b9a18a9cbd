// seed crea el administrador inicial. Es la única forma de obtener el primer usuario admin,
// porque signup siempre asigna el rol user.
//
// Uso: SEED_ADMIN_EMAIL=... SEED_ADMIN_PASSWORD=... go run ./cmd/seed
// Aplica las migraciones pendientes antes de crear el usuario. Si el email ya existe no hace nada.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/anylist-api/internal/application/dto"
	"github.com/jhoicas/anylist-api/internal/application/usecase"
	"github.com/jhoicas/anylist-api/internal/domain"
	"github.com/jhoicas/anylist-api/internal/domain/entity"
	"github.com/jhoicas/anylist-api/internal/infrastructure/postgres"
	"github.com/jhoicas/anylist-api/pkg/config"
	"github.com/jhoicas/anylist-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	if cfg.Seed.AdminEmail == "" || cfg.Seed.AdminPassword == "" {
		fmt.Fprintln(os.Stderr, "SEED_ADMIN_EMAIL y SEED_ADMIN_PASSWORD son requeridos")
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	applied, err := postgres.Migrate(ctx, pool)
	if err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	log.Info().Strs("applied", applied).Msg("migraciones al día")

	users := usecase.NewUserUseCase(postgres.NewUserRepository(pool), postgres.NewTxRunner(pool), log)
	if err := seedAdmin(ctx, users, cfg.Seed, log); err != nil {
		log.Fatal().Err(err).Msg("seed admin")
	}
}

// seedAdmin crea el admin si no existe; un admin ya presente no es error.
func seedAdmin(ctx context.Context, users *usecase.UserUseCase, seed config.SeedConfig, log *logger.Logger) error {
	existing, err := users.FindOneByEmail(ctx, seed.AdminEmail)
	switch {
	case err == nil:
		log.Info().Str("id", existing.ID).Str("email", existing.Email).Msg("el admin ya existe, nada que hacer")
		return nil
	case domain.KindOf(err) != domain.KindNotFound:
		return err
	}

	name := seed.AdminName
	if name == "" {
		name = "Administrator"
	}
	admin, err := users.Create(ctx, dto.SignupInput{
		Email:    seed.AdminEmail,
		FullName: name,
		Password: seed.AdminPassword,
		Roles:    []string{entity.RoleAdmin, entity.RoleUser},
	})
	if err != nil {
		return err
	}
	log.Info().Str("id", admin.ID).Str("email", admin.Email).Strs("roles", admin.Roles).Msg("admin creado")
	return nil
}
