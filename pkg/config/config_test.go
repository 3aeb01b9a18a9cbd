package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/anylist-api/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("APP_ENV", "development")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "anylist-api", cfg.App.Name)
	assert.Equal(t, config.DriverPostgres, cfg.DB.Driver)
	assert.True(t, cfg.DB.AutoMigrate)
	assert.Equal(t, 240, cfg.JWT.Expiration)
	assert.Equal(t, "/graphql", cfg.GraphQL.Path)
	assert.True(t, cfg.GraphQL.Playground, "playground habilitado fuera de producción")
	assert.Equal(t, 30*time.Second, cfg.GraphQL.Timeout)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_PORT", "8081")
	t.Setenv("DB_DRIVER", "MEMORY")
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("GRAPHQL_TIMEOUT", "5s")
	t.Setenv("GRAPHQL_MAX_DEPTH", "4")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8081", cfg.HTTP.Addr())
	assert.Equal(t, config.DriverMemory, cfg.DB.Driver)
	assert.False(t, cfg.DB.AutoMigrate)
	assert.False(t, cfg.GraphQL.Playground, "playground deshabilitado en producción por defecto")
	assert.Equal(t, 5*time.Second, cfg.GraphQL.Timeout)
	assert.Equal(t, 4, cfg.GraphQL.MaxDepth)
}

func TestLoad_SinSecretFalla(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_DriverDesconocidoFalla(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DB_DRIVER", "mongo")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_DSN_EscapaPassword(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:word", DBName: "anylist", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/anylist?sslmode=disable", c.DSN())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}
