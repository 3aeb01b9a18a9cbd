package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/anylist-api/internal/application/dto"
	"github.com/jhoicas/anylist-api/internal/application/usecase"
	"github.com/jhoicas/anylist-api/internal/domain"
	"github.com/jhoicas/anylist-api/internal/infrastructure/memory"
	"github.com/jhoicas/anylist-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const missingID = "6f1c1a7e-2b7a-4c55-9a55-0d3b4c1e9b10"

type fixture struct {
	store *memory.Store
	items *usecase.ItemUseCase
	users *usecase.UserUseCase
	logs  *bytes.Buffer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	buf := &bytes.Buffer{}
	log := logger.New(logger.Config{Env: "test", Level: "info", Out: buf})
	return &fixture{
		store: store,
		items: usecase.NewItemUseCase(store.Items(), store, log),
		users: usecase.NewUserUseCase(store.Users(), store, log),
		logs:  buf,
	}
}

func ptr[T any](v T) *T { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// Tests ItemUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestItem_CreateYFindOne(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.items.Create(ctx, dto.CreateItemInput{Name: "bolt", Quantity: 10}, nil)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID, "debe generarse un id")
	assert.Nil(t, created.UserID)

	got, err := f.items.FindOne(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "bolt", got.Name)
	assert.Equal(t, "10", got.Quantity.String())
	assert.Equal(t, created.ID, got.ID)
}

func TestItem_CreateConDueño(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner, err := f.users.Create(ctx, dto.SignupInput{Email: "ana@example.com", FullName: "Ana", Password: "123456"})
	require.NoError(t, err)

	item, err := f.items.Create(ctx, dto.CreateItemInput{Name: "nut", Quantity: 1.5}, owner)
	require.NoError(t, err)
	require.NotNil(t, item.UserID)
	assert.Equal(t, owner.ID, *item.UserID)
}

func TestItem_CreateInvalido(t *testing.T) {
	f := newFixture(t)

	_, err := f.items.Create(context.Background(), dto.CreateItemInput{Name: "   ", Quantity: -1}, nil)

	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestItem_FindOneInexistente(t *testing.T) {
	f := newFixture(t)

	for _, id := range []string{missingID, "no-es-uuid"} {
		got, err := f.items.FindOne(context.Background(), id)
		assert.Nil(t, got)
		require.Error(t, err)
		assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
		assert.Contains(t, err.Error(), id)
	}
}

func TestItem_UpdateMezclaCampos(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created, err := f.items.Create(ctx, dto.CreateItemInput{Name: "bolt", Quantity: 10}, nil)
	require.NoError(t, err)

	updated, err := f.items.Update(ctx, created.ID, dto.UpdateItemInput{Quantity: ptr(3.0)})
	require.NoError(t, err)
	assert.Equal(t, "bolt", updated.Name, "el nombre ausente conserva el valor guardado")
	assert.Equal(t, "3", updated.Quantity.String())

	got, err := f.items.FindOne(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "3", got.Quantity.String())
}

func TestItem_UpdateInexistenteNoEscribe(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.items.Update(ctx, missingID, dto.UpdateItemInput{Name: ptr("x")})
	require.Error(t, err)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))

	all, err := f.items.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestItem_UpdateNombreVacioFalla(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created, err := f.items.Create(ctx, dto.CreateItemInput{Name: "bolt", Quantity: 1}, nil)
	require.NoError(t, err)

	_, err = f.items.Update(ctx, created.ID, dto.UpdateItemInput{Name: ptr("  ")})
	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	got, _ := f.items.FindOne(ctx, created.ID)
	assert.Equal(t, "bolt", got.Name)
}

func TestItem_RemoveDevuelveUltimoEstado(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created, err := f.items.Create(ctx, dto.CreateItemInput{Name: "bolt", Quantity: 10}, nil)
	require.NoError(t, err)

	removed, err := f.items.Remove(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, removed.ID)
	assert.Equal(t, "bolt", removed.Name)

	_, err = f.items.FindOne(ctx, created.ID)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))

	_, err = f.items.Remove(ctx, created.ID)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestItem_FindAll(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for _, n := range []string{"a", "b", "c"} {
		_, err := f.items.Create(ctx, dto.CreateItemInput{Name: n, Quantity: 1}, nil)
		require.NoError(t, err)
	}

	all, err := f.items.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestItem_FallaDePersistenciaEsInternal(t *testing.T) {
	f := newFixture(t)
	f.store.FailWith = errors.New("connection reset by peer")

	_, err := f.items.Create(context.Background(), dto.CreateItemInput{Name: "bolt", Quantity: 1}, nil)

	require.Error(t, err)
	assert.Equal(t, domain.KindInternal, domain.KindOf(err))
	assert.Equal(t, domain.InternalMessage, err.Error(), "el detalle no se expone al cliente")
	assert.Contains(t, f.logs.String(), "connection reset by peer", "el detalle sí queda en el log")
}

func TestItem_IDsEnMayusculasSeNormalizan(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created, err := f.items.Create(ctx, dto.CreateItemInput{Name: "bolt", Quantity: 1}, nil)
	require.NoError(t, err)
	upper := strings.ToUpper(created.ID)

	got, err := f.items.FindOne(ctx, upper)
	require.NoError(t, err, "el driver en memoria encuentra el id sin importar mayúsculas")
	assert.Equal(t, created.ID, got.ID)

	updated, err := f.items.Update(ctx, upper, dto.UpdateItemInput{Name: ptr("nut")})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID, "se devuelve la forma canónica")

	removed, err := f.items.Remove(ctx, upper)
	require.NoError(t, err)
	assert.Equal(t, created.ID, removed.ID)
}
