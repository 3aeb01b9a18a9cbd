package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Drivers de almacenamiento soportados.
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config configuración completa, agrupada por área.
type Config struct {
	App     AppConfig
	DB      DBConfig
	JWT     JWTConfig
	HTTP    HTTPConfig
	GraphQL GraphQLConfig
	Docs    DocsConfig
	Seed    SeedConfig
}

// AppConfig identidad y entorno del proceso.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// IsProduction indica si la app corre en producción.
func (c AppConfig) IsProduction() bool {
	return c.Env == "production"
}

// DBConfig selección de driver y conexión PostgreSQL. DatabaseURL, si viene, reemplaza a los campos sueltos.
type DBConfig struct {
	Driver      string // postgres | memory
	AutoMigrate bool
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString prioriza DATABASE_URL sobre DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN arma la URL postgres:// escapando usuario y password.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig firma y vigencia de tokens.
type JWTConfig struct {
	Secret     string
	Expiration int // en minutos
	Issuer     string
}

// HTTPConfig dirección de escucha.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr host:port para app.Listen.
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// GraphQLConfig configuración del endpoint GraphQL.
type GraphQLConfig struct {
	Path       string
	Playground bool
	MaxDepth   int
	Timeout    time.Duration
}

// DocsConfig ubicación del swagger.json servido en /docs (vacío = deshabilitado).
type DocsConfig struct {
	SwaggerFile string
}

// SeedConfig datos del administrador inicial que crea cmd/seed.
type SeedConfig struct {
	AdminEmail    string
	AdminPassword string
	AdminName     string
}

// defaults valores usados cuando ni el entorno ni el archivo definen la clave.
var defaults = map[string]any{
	"APP_ENV":                "development",
	"APP_NAME":               "anylist-api",
	"LOG_LEVEL":              "info",
	"DB_DRIVER":              DriverPostgres,
	"DB_AUTO_MIGRATE":        true,
	"DB_HOST":                "localhost",
	"DB_PORT":                5432,
	"DB_USER":                "postgres",
	"DB_NAME":                "anylist",
	"DB_SSLMODE":             "disable",
	"JWT_EXPIRATION_MINUTES": 240,
	"JWT_ISSUER":             "anylist-api",
	"HTTP_HOST":              "0.0.0.0",
	"HTTP_PORT":              3000,
	"GRAPHQL_PATH":           "/graphql",
	"GRAPHQL_MAX_DEPTH":      10,
	"GRAPHQL_TIMEOUT":        "30s",
	"SWAGGER_FILE":           "./docs/swagger.json",
	"SEED_ADMIN_NAME":        "Administrador",
}

// Load combina, de menor a mayor prioridad: defaults, .env del directorio actual,
// config/config.env y variables de entorno.
func Load() (*Config, error) {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	v.SetConfigType("env")
	v.SetConfigName(".env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // sin archivo se sigue con env + defaults

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.MergeInConfig()

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	env := v.GetString("APP_ENV")
	v.SetDefault("GRAPHQL_PLAYGROUND", env != "production")

	cfg := &Config{
		App: AppConfig{
			Env:      env,
			Name:     v.GetString("APP_NAME"),
			LogLevel: v.GetString("LOG_LEVEL"),
		},
		DB: DBConfig{
			Driver:      strings.ToLower(v.GetString("DB_DRIVER")),
			AutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),
			DatabaseURL: v.GetString("DATABASE_URL"),
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetInt("DB_PORT"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASSWORD"),
			DBName:      v.GetString("DB_NAME"),
			SSLMode:     v.GetString("DB_SSLMODE"),
		},
		JWT: JWTConfig{
			Secret:     v.GetString("JWT_SECRET"),
			Expiration: v.GetInt("JWT_EXPIRATION_MINUTES"),
			Issuer:     v.GetString("JWT_ISSUER"),
		},
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		GraphQL: GraphQLConfig{
			Path:       v.GetString("GRAPHQL_PATH"),
			Playground: v.GetBool("GRAPHQL_PLAYGROUND"),
			MaxDepth:   v.GetInt("GRAPHQL_MAX_DEPTH"),
			Timeout:    v.GetDuration("GRAPHQL_TIMEOUT"),
		},
		Docs: DocsConfig{
			SwaggerFile: v.GetString("SWAGGER_FILE"),
		},
		Seed: SeedConfig{
			AdminEmail:    v.GetString("SEED_ADMIN_EMAIL"),
			AdminPassword: v.GetString("SEED_ADMIN_PASSWORD"),
			AdminName:     v.GetString("SEED_ADMIN_NAME"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate revisa los valores que la app no puede suplir con defaults.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("config: JWT_SECRET es requerido")
	}
	switch c.DB.Driver {
	case DriverPostgres, DriverMemory:
	default:
		return fmt.Errorf("config: DB_DRIVER desconocido %q", c.DB.Driver)
	}
	if !strings.HasPrefix(c.GraphQL.Path, "/") {
		return fmt.Errorf("config: GRAPHQL_PATH debe iniciar con /")
	}
	return nil
}
