package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/nexus-inventory/internal/domain"
	"github.com/jhoicas/nexus-inventory/internal/domain/entity"
	"github.com/jhoicas/nexus-inventory/internal/infrastructure/memory"
	"github.com/jhoicas/nexus-inventory/internal/infrastructure/seed"
)

func TestInventoryRepo_ContadorParteDelMayorSembrado(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewInventoryRepository([]entity.InventoryItem{{ID: "INV001"}, {ID: "INV007"}})

	n, err := repo.NextSequence(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, n)
}

func TestInventoryRepo_BorrarNoReutilizaConsecutivo(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewInventoryRepository(seed.InventoryItems())

	require.NoError(t, repo.Delete(ctx, "INV006"))
	n, err := repo.NextSequence(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, n, "el consecutivo no depende del tamaño actual de la colección")
}

func TestInventoryRepo_UpdateYDeleteInexistentes(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewInventoryRepository(seed.InventoryItems())
	before, _ := repo.List(ctx)

	err := repo.Update(ctx, &entity.InventoryItem{ID: "INV999", Name: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "INV999"), domain.ErrNotFound)

	after, _ := repo.List(ctx)
	assert.Equal(t, before, after)
}

func TestInventoryRepo_ListDevuelveCopia(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewInventoryRepository(seed.InventoryItems())

	list, _ := repo.List(ctx)
	list[0].Name = "mutado"

	got, err := repo.GetByID(ctx, "INV001")
	require.NoError(t, err)
	assert.Equal(t, "Laptop", got.Name)

	missing, err := repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestInvoiceRepo_ContadorYCopiaDeLineas(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewInvoiceRepository(seed.Invoices())

	n, err := repo.NextSequence(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	inv, err := repo.GetByID(ctx, "INV2023001")
	require.NoError(t, err)
	inv.Items[0].Quantity = 99

	again, _ := repo.GetByID(ctx, "INV2023001")
	assert.Equal(t, 1, again.Items[0].Quantity)
}

func TestKVStore(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore()

	_, ok, err := kv.Get(ctx, "user")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set(ctx, "user", []byte(`{"id":"USR001"}`)))
	v, ok, err := kv.Get(ctx, "user")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"id":"USR001"}`, string(v))

	require.NoError(t, kv.Remove(ctx, "user"))
	require.NoError(t, kv.Remove(ctx, "user"))
	_, ok, _ = kv.Get(ctx, "user")
	assert.False(t, ok)
}
