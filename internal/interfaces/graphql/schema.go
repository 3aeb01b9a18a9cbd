// Package graphql expone los casos de uso de items, usuarios y auth como API GraphQL.
package graphql

import (
	"context"
	_ "embed"
	"runtime/debug"

	graphqlgo "github.com/graph-gophers/graphql-go"

	"github.com/jhoicas/anylist-api/pkg/logger"
)

//go:embed schema.graphql
var sdl string

// SDL devuelve el schema en lenguaje SDL.
func SDL() string { return sdl }

// SchemaConfig límites de ejecución del schema.
type SchemaConfig struct {
	MaxDepth int
}

// NewSchema parsea el SDL y lo enlaza con el resolver raíz.
func NewSchema(r *Resolver, cfg SchemaConfig, log *logger.Logger) (*graphqlgo.Schema, error) {
	opts := []graphqlgo.SchemaOpt{
		graphqlgo.Logger(panicLogger{log: log.Named("graphql")}),
	}
	if cfg.MaxDepth > 0 {
		opts = append(opts, graphqlgo.MaxDepth(cfg.MaxDepth))
	}
	return graphqlgo.ParseSchema(sdl, r, opts...)
}

// panicLogger registra en zerolog los panics que el ejecutor recupera en los resolvers.
type panicLogger struct {
	log *logger.Logger
}

func (l panicLogger) LogPanic(_ context.Context, value interface{}) {
	l.log.Error().Interface("panic", value).Bytes("stack", debug.Stack()).Msg("panic en resolver")
}
