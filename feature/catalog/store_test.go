package catalog_test

import (
	"context"
	"testing"

	"floorops/core/database"
	"floorops/feature/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *catalog.Store {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	store := catalog.NewStore(db)
	require.NoError(t, store.Migrate())
	return store
}

func TestStoreSizes(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreateSize(ctx, `12"x24"`))
	require.NoError(t, store.CreateSize(ctx, `6"x36"`))
	// Creating an existing label again is a no-op.
	require.NoError(t, store.CreateSize(ctx, `12"x24"`))

	sizes, err := store.LoadSizes(ctx)
	require.NoError(t, err)
	require.Len(t, sizes, 2)

	labels := []string{sizes[0].Label, sizes[1].Label}
	assert.Contains(t, labels, `12"x24"`)
	assert.Contains(t, labels, `6"x36"`)
}

func TestStoreSizeAliases(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreateSizeAlias(ctx, "M122", `12"x24"`))
	require.NoError(t, store.CreateSizeAlias(ctx, "M122", `12"x24"`))

	aliases, err := store.LoadSizeAliases(ctx)
	require.NoError(t, err)
	require.Len(t, aliases, 1)
	assert.Equal(t, "M122", aliases[0].Text)
	assert.Equal(t, `12"x24"`, aliases[0].Mapped)
}

func TestStoreProductAliasCreatesProduct(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreateProductAlias(ctx, "RO Plank 7mm", "Red Oak Plank"))

	names, err := store.LoadProductNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Red Oak Plank"}, names)

	aliases, err := store.LoadProductAliases(ctx)
	require.NoError(t, err)
	require.Len(t, aliases, 1)
	assert.Equal(t, "RO Plank 7mm", aliases[0].Text)
	assert.Equal(t, "Red Oak Plank", aliases[0].Mapped)
}

func TestStoreSearchProductNames(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreateProduct(ctx, "Red Oak Plank"))
	require.NoError(t, store.CreateProduct(ctx, "Maple Select"))
	require.NoError(t, store.CreateProduct(ctx, "White Oak Herringbone"))

	names, err := store.SearchProductNames(ctx, "Oak")
	require.NoError(t, err)
	assert.Equal(t, []string{"Red Oak Plank", "White Oak Herringbone"}, names)

	names, err = store.SearchProductNames(ctx, "walnut")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestStoreEmptyInputRejected(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	assert.Error(t, store.CreateSize(ctx, ""))
	assert.Error(t, store.CreateSizeAlias(ctx, "", `12"x24"`))
	assert.Error(t, store.CreateSizeAlias(ctx, "M122", ""))
	assert.Error(t, store.CreateProductAlias(ctx, "", "Red Oak Plank"))
	assert.Error(t, store.CreateProduct(ctx, ""))
}
