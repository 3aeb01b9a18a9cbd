package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/anylist-api/internal/application/usecase"
	"github.com/jhoicas/anylist-api/internal/domain/entity"
	"github.com/jhoicas/anylist-api/internal/infrastructure/memory"
	"github.com/jhoicas/anylist-api/pkg/config"
	"github.com/jhoicas/anylist-api/pkg/logger"
)

func TestSeedAdmin_Idempotente(t *testing.T) {
	store := memory.NewStore()
	users := usecase.NewUserUseCase(store.Users(), store, logger.Nop())
	seed := config.SeedConfig{AdminEmail: "root@example.com", AdminPassword: "cambiar123"}
	ctx := context.Background()

	require.NoError(t, seedAdmin(ctx, users, seed, logger.Nop()))
	require.NoError(t, seedAdmin(ctx, users, seed, logger.Nop()), "la segunda ejecución no falla")

	all, err := users.FindAll(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Administrator", all[0].FullName)
	assert.ElementsMatch(t, []string{entity.RoleAdmin, entity.RoleUser}, all[0].Roles)
}
